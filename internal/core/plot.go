package core

import "github.com/vovakirdan/blur/internal/gm"

// CellAspect is how many columns make up one unit of height on a terminal.
// Cells are about twice as tall as they are wide.
const CellAspect = 2

// Plotter maps world coordinates (+Y up) onto screen cells around an origin
// and marks each point it receives. It satisfies gm.Collector, so shapes
// from gm.CircleVector can be drawn straight into a Screen.
type Plotter struct {
	screen  *Screen
	originX int
	originY int
	scale   float32
	clip    Rect
	glyph   rune
	color   Color
	plotted int
}

var _ gm.Collector = (*Plotter)(nil)

// NewPlotter creates a plotter centered on (originX, originY).
func NewPlotter(s *Screen, originX, originY int, glyph rune, color Color) *Plotter {
	return &Plotter{
		screen:  s,
		originX: originX,
		originY: originY,
		scale:   1,
		clip:    s.Bounds(),
		glyph:   glyph,
		color:   color,
	}
}

// WithScale sets how many rows one world unit spans and returns p.
func (p *Plotter) WithScale(scale float32) *Plotter {
	p.scale = scale
	return p
}

// WithClip limits Plot and Collect to the cells inside r and returns p.
// Points outside r are dropped and not counted.
func (p *Plotter) WithClip(r Rect) *Plotter {
	p.clip = r
	return p
}

// WithStyle changes the glyph and color used by Collect and returns p.
func (p *Plotter) WithStyle(glyph rune, color Color) *Plotter {
	p.glyph = glyph
	p.color = color
	return p
}

// Cell converts a world point to a screen cell.
func (p *Plotter) Cell(x, y float32) (int, int) {
	return p.originX + Round(x*p.scale*CellAspect), p.originY - Round(y*p.scale)
}

// Plot marks a single world point with its own glyph and color.
func (p *Plotter) Plot(x, y float32, glyph rune, color Color) {
	p.mark(x, y, glyph, color)
}

// Collect plots a single point.
func (p *Plotter) Collect(x, y float32) {
	if p.mark(x, y, p.glyph, p.color) {
		p.plotted++
	}
}

func (p *Plotter) mark(x, y float32, glyph rune, color Color) bool {
	cx, cy := p.Cell(x, y)
	if !p.clip.Contains(cx, cy) {
		return false
	}
	p.screen.SetWithColor(cx, cy, glyph, color)
	return true
}

// Line draws from the origin out to the world point (x, y).
func (p *Plotter) Line(x, y float32, r rune) {
	cx, cy := p.Cell(x, y)
	p.screen.DrawLine(p.originX, p.originY, cx, cy, r, p.color)
}

// Plotted returns how many collected points landed inside the clip.
func (p *Plotter) Plotted() int {
	return p.plotted
}
