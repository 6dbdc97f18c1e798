package turret

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/blur/internal/gm"
)

// Enemy walks straight at a target point.
type Enemy struct {
	ID    int
	Pos   gm.Position
	Speed float32 // World units per tick
}

// Step moves the enemy toward target without overshooting it.
func (e *Enemy) Step(target gm.Position) {
	if e.Pos.Distance2(target) <= e.Speed*e.Speed {
		e.Pos = target
		return
	}

	// AngleTo is math style: 0° is +X, so cos drives x and sin drives y.
	dir := e.Pos.AngleTo(target)
	e.Pos = e.Pos.Add(e.Speed*dir.Cos(), e.Speed*dir.Sin())
}

// Bearing is the compass heading from the turret to the enemy.
func (e *Enemy) Bearing() gm.Angle {
	return gm.FromDirection(e.Pos.Vec2())
}

// Bullet flies in a straight line until its TTL runs out.
type Bullet struct {
	Pos gm.Position
	Vel mgl32.Vec2
	TTL int
}

// Step advances the bullet by one tick.
func (b *Bullet) Step() {
	b.Pos = b.Pos.Add(b.Vel.X(), b.Vel.Y())
	b.TTL--
}
