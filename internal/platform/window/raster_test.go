package window

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blur/internal/core"
)

func TestRasterCells(t *testing.T) {
	r := DefaultRaster()

	cols, rows := r.Cells(1920, 1080)
	assert.Equal(t, 240, cols)
	assert.Equal(t, 67, rows)

	cols, rows = r.Cells(3, 3)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
}

func TestRasterDraw(t *testing.T) {
	r := Raster{CellW: 4, CellH: 4}
	s := core.NewScreen(3, 2)
	s.SetWithColor(1, 0, '#', core.ColorRed)
	s.SetWithColor(2, 1, '.', core.ColorGreen)

	w, h := r.Size(s)
	assert.Equal(t, 12, w)
	assert.Equal(t, 8, h)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.Draw(img, s)

	red := rgba(core.ColorRed)
	green := rgba(core.ColorGreen)

	// Empty cell.
	assert.Equal(t, Clear, img.RGBAAt(1, 1))
	// Glyph with gutter.
	assert.Equal(t, Clear, img.RGBAAt(4, 0))
	assert.Equal(t, red, img.RGBAAt(5, 1))
	assert.Equal(t, red, img.RGBAAt(6, 2))
	// Dot is a centered square.
	assert.Equal(t, green, img.RGBAAt(10, 6))
	assert.Equal(t, Clear, img.RGBAAt(8, 4))
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x87, B: 0x00, A: 0xff}, rgba(core.ColorOrange))
}
