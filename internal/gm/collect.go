package gm

import "github.com/go-gl/mathgl/mgl32"

// Collector receives the vertices emitted by CircleVector.
type Collector interface {
	Collect(x, y float32)
}

// CollectorFunc adapts a two-scalar function to Collector.
type CollectorFunc func(x, y float32)

// Collect calls f(x, y).
func (f CollectorFunc) Collect(x, y float32) {
	f(x, y)
}

// Containers that store whole vertices. CircleVector takes them through the
// adapters below; when a container offers several of these, pick the adapter
// in this order: PushBack, Insert, Set.
type (
	// PushBacker adds a vertex to the end of a container.
	PushBacker interface {
		PushBack(v mgl32.Vec2)
	}

	// Inserter inserts a vertex into a container.
	Inserter interface {
		Insert(v mgl32.Vec2)
	}

	// Setter stores a vertex into a container.
	Setter interface {
		Set(v mgl32.Vec2)
	}
)

// PushBackInto feeds emitted vertices to c.PushBack.
func PushBackInto[C PushBacker](c C) CollectorFunc {
	return func(x, y float32) { c.PushBack(mgl32.Vec2{x, y}) }
}

// InsertInto feeds emitted vertices to c.Insert.
func InsertInto[C Inserter](c C) CollectorFunc {
	return func(x, y float32) { c.Insert(mgl32.Vec2{x, y}) }
}

// SetInto feeds emitted vertices to c.Set.
func SetInto[C Setter](c C) CollectorFunc {
	return func(x, y float32) { c.Set(mgl32.Vec2{x, y}) }
}

// Vertices is a growable vertex list. A *Vertices is a Collector.
type Vertices []mgl32.Vec2

// Collect appends (x, y).
func (v *Vertices) Collect(x, y float32) {
	*v = append(*v, mgl32.Vec2{x, y})
}

// CircleVector emits the vertices of a regular polygon with the given number of
// points, centred on the origin, each length away from it. The first vertex
// lies at offset (compass convention, see ToCartesian), the rest follow at
// 360/points degree steps.
//
// c is a *Vertices, a CollectorFunc, or a vertex container wrapped with
// PushBackInto, InsertInto or SetInto.
func CircleVector[C Collector](points int, length float32, offset Angle, c C) {
	if points <= 0 {
		return
	}

	step := 360 / float32(points)
	for index := range points {
		angle := offset.Add(FromDegrees(float32(index) * step))
		c.Collect(angle.CartesianX(length), angle.CartesianY(length))
	}
}

// CircleVectorAt is CircleVector with a 0° offset.
func CircleVectorAt[C Collector](points int, length float32, c C) {
	CircleVector(points, length, Zero(), c)
}
