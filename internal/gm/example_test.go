package gm_test

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/blur/internal/gm"
)

func ExampleCircleVector() {
	var square gm.Vertices
	gm.CircleVector(4, math.Sqrt2, gm.FromDegrees(45), &square)

	for _, v := range square {
		fmt.Printf("(%.2f, %.2f)\n", v.X(), v.Y())
	}
	// Output:
	// (1.00, 1.00)
	// (1.00, -1.00)
	// (-1.00, -1.00)
	// (-1.00, 1.00)
}

type ring struct{ vs []mgl32.Vec2 }

func (r *ring) PushBack(v mgl32.Vec2) { r.vs = append(r.vs, v) }

type seen map[mgl32.Vec2]struct{}

func (s seen) Insert(v mgl32.Vec2) { s[v] = struct{}{} }

type last struct{ v mgl32.Vec2 }

func (l *last) Set(v mgl32.Vec2) { l.v = v }

// A container offering more than one of PushBack, Insert and Set is wrapped
// with the first adapter in that order.
func ExampleCircleVector_adapters() {
	calls := 0
	gm.CircleVectorAt(6, 1, gm.CollectorFunc(func(x, y float32) { calls++ }))
	fmt.Println("func:", calls)

	r := &ring{}
	gm.CircleVectorAt(6, 1, gm.PushBackInto(r))
	fmt.Println("push back:", len(r.vs))

	s := seen{}
	gm.CircleVectorAt(6, 1, gm.InsertInto(s))
	fmt.Println("insert:", len(s))

	l := &last{}
	gm.CircleVectorAt(3, 2, gm.SetInto(l))
	fmt.Printf("set: (%.2f, %.2f)\n", l.v.X(), l.v.Y())
	// Output:
	// func: 6
	// push back: 6
	// insert: 6
	// set: (-1.73, -1.00)
}
