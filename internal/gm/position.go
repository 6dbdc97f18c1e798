package gm

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Position is a point in 2D space. The zero value is the origin.
type Position struct {
	vec mgl32.Vec2
}

// NewPosition creates a Position at (x, y).
func NewPosition(x, y float32) Position {
	return Position{vec: mgl32.Vec2{x, y}}
}

// PositionOf wraps a vector as a Position.
func PositionOf(v mgl32.Vec2) Position {
	return Position{vec: v}
}

// X returns the x coordinate.
func (p Position) X() float32 { return p.vec.X() }

// Y returns the y coordinate.
func (p Position) Y() float32 { return p.vec.Y() }

// Vec2 returns the underlying vector.
func (p Position) Vec2() mgl32.Vec2 { return p.vec }

// Add returns p translated by (dx, dy).
func (p Position) Add(dx, dy float32) Position {
	return Position{vec: p.vec.Add(mgl32.Vec2{dx, dy})}
}

// AngleTo returns the math-style angle from p to other, in [0, 360).
func (p Position) AngleTo(other Position) Angle {
	return FromPosition(p.vec, other.vec)
}

// AngleToXY is AngleTo for the point (x, y).
func (p Position) AngleToXY(x, y float32) Angle {
	return p.AngleTo(NewPosition(x, y))
}

// Distance2 returns the squared distance to other.
// Prefer it over Distance for comparisons.
func (p Position) Distance2(other Position) float32 {
	delta := other.vec.Sub(p.vec)
	return delta.Dot(delta)
}

// Distance2XY is Distance2 for the point (x, y).
func (p Position) Distance2XY(x, y float32) float32 {
	return p.Distance2(NewPosition(x, y))
}

// Distance returns the Euclidean distance to other.
func (p Position) Distance(other Position) float32 {
	return float32(math.Sqrt(float64(p.Distance2(other))))
}

// DistanceXY is Distance for the point (x, y).
func (p Position) DistanceXY(x, y float32) float32 {
	return p.Distance(NewPosition(x, y))
}
