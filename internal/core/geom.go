// Package core provides the platform types shared by scenes and runners:
// the Screen cell buffer, input frames, runtime config and a Plotter that
// draws gm shapes onto a Screen. It does not import Bubble Tea or Ebiten,
// so scene logic stays pure and testable.
package core

import (
	"cmp"
	"math"
)

// Rect is an axis-aligned block of cells. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with its top-left cell at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the rectangle spanning halfW columns and halfH rows on
// every side of (cx, cy).
func RectAround(cx, cy, halfW, halfH int) Rect {
	return NewRect(cx-halfW, cy-halfH, 2*halfW+1, 2*halfH+1)
}

// CenteredRect returns a w x h rectangle centered on the screen.
func CenteredRect(s *Screen, w, h int) Rect {
	return NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the middle cell, rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// FitScale returns the Plotter scale that keeps a circle of the given world
// radius inside area, or 1 when it already fits.
func FitScale(area Rect, radius float32) float32 {
	fit := float32(min(area.H/2-1, area.W/(2*CellAspect)-1))
	if fit <= 0 || radius <= fit {
		return 1
	}
	return fit / radius
}

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(hi, val))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Round rounds half away from zero to the nearest cell index.
func Round(f float32) int {
	return int(math.Round(float64(f)))
}
