package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(4, 2, 10, 5)

	assert.Equal(t, 14, r.Right())
	assert.Equal(t, 7, r.Bottom())

	x, y := r.Center()
	assert.Equal(t, 9, x)
	assert.Equal(t, 4, y)
}

func TestRectAround(t *testing.T) {
	r := RectAround(40, 12, 18, 9)

	assert.Equal(t, NewRect(22, 3, 37, 19), r)
	x, y := r.Center()
	assert.Equal(t, 40, x, "the centre cell round-trips")
	assert.Equal(t, 12, y)

	assert.Equal(t, NewRect(5, 5, 1, 1), RectAround(5, 5, 0, 0))
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	field := NewRect(0, 2, 80, 21)

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"first playfield row", 40, 2, true},
		{"last playfield row", 40, 22, true},
		{"HUD row above", 40, 1, false},
		{"HUD row below", 40, 23, false},
		{"left column", 0, 10, true},
		{"past right edge", 80, 10, false},
		{"negative column", -1, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.in, field.Contains(tc.x, tc.y))
		})
	}
}

func TestRectIntersects(t *testing.T) {
	readout := NewRect(2, 1, 16, 17)

	tests := []struct {
		name string
		dial Rect
		want bool
	}{
		{"centred dial on a wide screen", RectAround(60, 15, 18, 9), false},
		{"centred dial on a narrow screen", RectAround(30, 15, 18, 9), true},
		{"touching the right edge", NewRect(18, 1, 5, 5), false},
		{"one shared cell", NewRect(17, 17, 5, 5), true},
		{"below the readout", NewRect(2, 18, 16, 3), false},
		{"inside the readout", NewRect(4, 4, 2, 2), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dial.Intersects(readout))
			assert.Equal(t, tc.want, readout.Intersects(tc.dial), "symmetric")
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(NewScreen(80, 24), 20, 6)

	assert.Equal(t, NewRect(30, 9, 20, 6), r)
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name   string
		area   Rect
		radius float32
		want   float32
	}{
		{"fits already", NewRect(0, 0, 120, 30), 9, 1},
		{"height bound", NewRect(0, 2, 80, 21), 10, 0.9},
		{"width bound", NewRect(0, 0, 20, 40), 8, 0.5},
		{"no room at all", NewRect(0, 0, 3, 2), 10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, FitScale(tc.area, tc.radius), 1e-6)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 64, Clamp(65, 1, 64))
	assert.Equal(t, 1, Clamp(0, 1, 64))
	assert.Equal(t, 6, Clamp(6, 1, 64))

	assert.Equal(t, 1.0, Clamp(1.7, 0.0, 1.0))
	assert.Equal(t, 0.0, Clamp(-0.2, 0.0, 1.0))
	assert.Equal(t, 0.25, Clamp(0.25, 0.0, 1.0))
}

func TestRoundAndAbs(t *testing.T) {
	rounds := map[float32]int{0: 0, 0.49: 0, 0.5: 1, -0.5: -1, -1.2: -1, 10.8: 11}
	for in, want := range rounds {
		assert.Equal(t, want, Round(in), "Round(%v)", in)
	}

	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Zero(t, Abs(0))
}
