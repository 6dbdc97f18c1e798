// Package gm provides the game math value types used by scenes: Angle, an
// orientation stored as raw degrees, and Position, a 2D point.
// Both are immutable values; every operation returns a new value.
package gm

import (
	"cmp"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Conversion factors between degrees and radians.
const (
	RadiansToDegrees = float32(180 / math.Pi)
	DegreesToRadians = float32(math.Pi / 180)
)

const (
	pi    = float32(math.Pi)
	twoPi = float32(2 * math.Pi)
)

// Angle is an orientation in degrees.
// The value is kept as constructed: 370° stays 370° until Normalized is called.
type Angle struct {
	degrees float32
}

// FromDegrees creates an Angle from degrees.
func FromDegrees(degrees float32) Angle {
	return Angle{degrees: degrees}
}

// FromRadians creates an Angle from radians.
func FromRadians(radians float32) Angle {
	return Angle{degrees: radians * RadiansToDegrees}
}

// FromPosition returns the math-style angle of the vector from -> to:
// 0° points along +X and angles grow toward +Y.
// Unlike the other constructors the result is already in [0, 360).
func FromPosition(from, to mgl32.Vec2) Angle {
	delta := to.Sub(from)
	radians := float32(math.Atan2(float64(delta.Y()), float64(delta.X())))

	degrees := FromRadians(radians).Degrees()
	if degrees < 0 {
		degrees += 360
	}

	return FromDegrees(degrees)
}

// FromCoords is FromPosition for (x1, y1) -> (x2, y2).
func FromCoords(x1, y1, x2, y2 float32) Angle {
	return FromPosition(mgl32.Vec2{x1, y1}, mgl32.Vec2{x2, y2})
}

// FromPoint is FromPosition measured from the origin.
func FromPoint(to mgl32.Vec2) Angle {
	return FromPosition(mgl32.Vec2{}, to)
}

// FromPointXY is FromPoint for (x, y).
func FromPointXY(x, y float32) Angle {
	return FromPosition(mgl32.Vec2{}, mgl32.Vec2{x, y})
}

// FromDirection returns the compass-style angle of a direction vector:
// 0° points along +Y ("up") and angles grow toward +X.
// This is the inverse of ToCartesian and is not normalized.
func FromDirection(direction mgl32.Vec2) Angle {
	return FromRadians(float32(math.Atan2(float64(direction.X()), float64(direction.Y()))))
}

// FromDirectionXY is FromDirection for (x, y).
func FromDirectionXY(x, y float32) Angle {
	return FromDirection(mgl32.Vec2{x, y})
}

// Zero returns 0°.
func Zero() Angle { return FromDegrees(0) }

// Quarter returns 90°.
func Quarter() Angle { return FromDegrees(90) }

// Half returns 180°.
func Half() Angle { return FromDegrees(180) }

// Full returns 360°.
func Full() Angle { return FromDegrees(360) }

// Up returns the compass heading 0°.
func Up() Angle { return Zero() }

// Right returns the compass heading 90°.
func Right() Angle { return Quarter() }

// Down returns the compass heading 180°.
func Down() Angle { return Half() }

// Left returns the compass heading 270°.
func Left() Angle { return FromDegrees(270) }

// Add returns a + other on raw degrees.
func (a Angle) Add(other Angle) Angle {
	return FromDegrees(a.degrees + other.degrees)
}

// Sub returns a - other on raw degrees.
func (a Angle) Sub(other Angle) Angle {
	return FromDegrees(a.degrees - other.degrees)
}

// Mul scales the raw degrees.
func (a Angle) Mul(scalar float32) Angle {
	return FromDegrees(a.degrees * scalar)
}

// Div divides the raw degrees.
func (a Angle) Div(scalar float32) Angle {
	return FromDegrees(a.degrees / scalar)
}

// Compare orders angles by raw degrees, so 10° < 370°.
func (a Angle) Compare(other Angle) int {
	return cmp.Compare(a.degrees, other.degrees)
}

// Less reports whether a orders before other by raw degrees.
func (a Angle) Less(other Angle) bool {
	return a.Compare(other) < 0
}

// Degrees returns the raw value in degrees.
func (a Angle) Degrees() float32 {
	return a.degrees
}

// Radians returns the raw value in radians.
func (a Angle) Radians() float32 {
	return a.degrees * DegreesToRadians
}

// Normalized reduces the angle to [0, 360).
func (a Angle) Normalized() Angle {
	return FromDegrees(floorMod(a.degrees, 360))
}

// SignedNormalized reduces the angle to (-180, 180].
func (a Angle) SignedNormalized() Angle {
	normalized := a.Normalized().degrees
	if normalized > 180 {
		normalized -= 360
	}

	return FromDegrees(normalized)
}

// String renders the raw value, e.g. "370.00°".
func (a Angle) String() string {
	return fmt.Sprintf("%.2f°", a.degrees)
}

// IsAcute reports whether the normalized angle is below 90°.
func (a Angle) IsAcute() bool {
	return a.Normalized().degrees < 90
}

// IsObtuse reports whether the normalized angle is strictly between 90° and 180°.
func (a Angle) IsObtuse() bool {
	degrees := a.Normalized().degrees
	return degrees > 90 && degrees < 180
}

// IsReflex reports whether the normalized angle is above 180°.
func (a Angle) IsReflex() bool {
	return a.Normalized().degrees > 180
}

// ClockwiseDistance returns |to - a| on raw degrees.
// It does not account for wrap-around: 350° -> 10° is 340.
func (a Angle) ClockwiseDistance(to Angle) float32 {
	return abs(to.degrees - a.degrees)
}

// CounterClockwiseDistance returns 360 - ClockwiseDistance(to).
func (a Angle) CounterClockwiseDistance(to Angle) float32 {
	return 360 - a.ClockwiseDistance(to)
}

// ShortestDistance returns the circular distance between the two angles,
// always in [0, 180]: 350° -> 10° is 20.
func (a Angle) ShortestDistance(to Angle) float32 {
	diff := floorMod(abs(a.degrees-to.degrees), 360)
	return min(diff, 360-diff)
}

// Within reports whether other is at most margin degrees away.
func (a Angle) Within(other Angle, margin float32) bool {
	return a.ShortestDistance(other) <= margin
}

// Near reports whether other is strictly closer than rng degrees.
func (a Angle) Near(other Angle, rng float32) bool {
	return a.ShortestDistance(other) < rng
}

// MoveToward steps speed degrees along the shortest arc toward target.
// Once target is within reach it is returned as is, so the step never overshoots.
func (a Angle) MoveToward(target Angle, speed float32) Angle {
	if a.ShortestDistance(target) <= speed {
		return target
	}

	if a.turn(target) >= 0 {
		return FromDegrees(a.degrees + speed)
	}

	return FromDegrees(a.degrees - speed)
}

// Clamp moves a just far enough to be within rng degrees of dest.
func (a Angle) Clamp(dest Angle, rng float32) Angle {
	distance := a.ShortestDistance(dest)
	if distance <= rng {
		return a
	}

	return a.MoveToward(dest, distance-rng)
}

// Lerp interpolates along the shortest arc in degrees.
// t is not clamped, values outside [0, 1] extrapolate.
func (a Angle) Lerp(dest Angle, t float32) Angle {
	shortest := a.ShortestDistance(dest)

	direction := float32(-1)
	if a.turn(dest) >= 0 {
		direction = 1
	}

	return FromDegrees(a.degrees + direction*shortest*t)
}

// Slerp interpolates along the shortest arc in radians.
// It turns the same way as Lerp, including for angles exactly half a turn apart.
func (a Angle) Slerp(dest Angle, t float32) Angle {
	from := a.Radians()
	to := dest.Radians()

	shortest := to - from
	if abs(shortest) > pi {
		// Raw values may be several turns apart, drop whole turns.
		shortest -= twoPi * float32(math.Round(float64(shortest/twoPi)))
	}

	// float32 rounding near ±π can pick either side; Lerp's rule wins.
	if (shortest >= 0) != (a.turn(dest) >= 0) {
		shortest = -shortest
	}

	return FromRadians(from + shortest*t)
}

// turn returns the signed shortest delta toward target in [-180, 180).
// A half turn resolves to -180.
func (a Angle) turn(target Angle) float32 {
	return floorMod(target.degrees-a.degrees+180, 360) - 180
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float32 {
	return float32(math.Sin(float64(a.Radians())))
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float32 {
	return float32(math.Cos(float64(a.Radians())))
}

// ToCartesian projects length along the compass heading: (length*sin, length*cos).
// Up (0°) maps to +Y and Right (90°) to +X.
func (a Angle) ToCartesian(length float32) mgl32.Vec2 {
	return mgl32.Vec2{a.CartesianX(length), a.CartesianY(length)}
}

// CartesianX returns the X component of ToCartesian.
func (a Angle) CartesianX(length float32) float32 {
	return length * a.Sin()
}

// CartesianY returns the Y component of ToCartesian.
func (a Angle) CartesianY(length float32) float32 {
	return length * a.Cos()
}

// RotatePoint rotates point around the origin by the angle using the
// standard rotation matrix.
func (a Angle) RotatePoint(point mgl32.Vec2) mgl32.Vec2 {
	radians := float64(a.Radians())
	cos := float32(math.Cos(radians))
	sin := float32(math.Sin(radians))

	x := point.X()*cos - point.Y()*sin
	y := point.X()*sin + point.Y()*cos

	return mgl32.Vec2{x, y}
}

// floorMod is the floored modulo: the result has the sign of y.
// For y > 0 the result is in [0, y).
func floorMod(x, y float32) float32 {
	m := math.Mod(float64(x), float64(y))
	if m < 0 {
		m += float64(y)
	}

	r := float32(m)
	// Tiny negative x rounds up to y in float32.
	if r >= y {
		r -= y
	}
	return r
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
