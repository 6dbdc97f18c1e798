package window

import (
	"image"
	"image/color"

	"github.com/vovakirdan/blur/internal/core"
)

// Clear is the window background.
var Clear = color.RGBA{R: 35, G: 35, B: 35, A: 0xff}

// Raster turns a character screen into pixels. Every cell is a
// CellW x CellH block; a glyph fills its block in the cell color.
type Raster struct {
	CellW int
	CellH int
}

// DefaultRaster uses 8x16 cells, the shape of a terminal cell.
func DefaultRaster() Raster {
	return Raster{CellW: 8, CellH: 16}
}

// Cells returns how many cells fit in a w x h pixel area.
func (r Raster) Cells(w, h int) (cols, rows int) {
	return max(w/r.CellW, 1), max(h/r.CellH, 1)
}

// Size returns the pixel size of s.
func (r Raster) Size(s *core.Screen) (w, h int) {
	return s.Width() * r.CellW, s.Height() * r.CellH
}

// Draw paints s into dst, which must be at least Size(s).
func (r Raster) Draw(dst *image.RGBA, s *core.Screen) {
	fill(dst, dst.Bounds(), Clear)

	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			fill(dst, r.glyphRect(x, y, cell.Rune), rgba(cell.Color))
		}
	}
}

// glyphRect is the area a glyph covers. Dots get a small centered square,
// everything else the cell with a one pixel gutter.
func (r Raster) glyphRect(x, y int, ch rune) image.Rectangle {
	cell := image.Rect(x*r.CellW, y*r.CellH, (x+1)*r.CellW, (y+1)*r.CellH)

	switch ch {
	case '.', ',', '·', '\'', '`':
		cx := cell.Min.X + r.CellW/2
		cy := cell.Min.Y + r.CellH/2
		d := max(r.CellW/4, 1)
		return image.Rect(cx-d, cy-d, cx+d, cy+d)
	}

	if r.CellW > 2 && r.CellH > 2 {
		return cell.Inset(1)
	}
	return cell
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func fill(dst *image.RGBA, rect image.Rectangle, c color.RGBA) {
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}
