// Package turret implements a turret defence game.
// A turret at the centre of a ring turns toward a heading the player steers,
// enemies walk in from the ring and bullets fly along the barrel.
package turret

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blur/internal/config"
	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/gm"
	"github.com/vovakirdan/blur/internal/registry"
)

// ID is the registry and score key of the scene.
const ID = "turret"

// Visual characters for rendering
const (
	BaseChar    = '◉'
	BarrelChar  = '•'
	HeadingChar = '+'
	EnemyChar   = '◆'
	BulletChar  = '∙'
	RingChar    = '·'
)

// Radius around the turret at which a walking enemy breaches it.
const breachRadius = 1

// Rows reserved for the HUD.
const (
	hudTop    = 2
	hudBottom = 1
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements the turret scene.
type Game struct {
	barrel  gm.Angle // Where the turret points (compass heading)
	heading gm.Angle // Where the player wants it to point
	enemies []*Enemy
	bullets []*Bullet

	score     int
	lives     int
	kills     int
	gameOver  bool
	paused    bool
	tickCount int
	cooldown  int
	nextSpawn int
	nextID    int
	lockedID  int // 0 when nothing is locked

	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.TurretConfig
	fixedCfg   bool // cfg was injected, skip loading on Reset
	difficulty *config.DifficultyManager
}

// New creates a turret game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a turret game with a fixed config.
func NewWithConfig(cfg config.TurretConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this scene.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this scene.
func (g *Game) Title() string {
	return "Turret Defence"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadTurret(configPath)
		if err != nil {
			cfg = config.DefaultTurretConfig()
		}
		if difficultyPreset != "" {
			config.ApplyTurretPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.barrel = gm.Up()
	g.heading = gm.Up()
	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.kills = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.cooldown = 0
	g.nextSpawn = g.cfg.Enemies.SpawnEvery / 3
	g.nextID = 1
	g.lockedID = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.aim(in)
	g.turn()

	if g.cooldown > 0 {
		g.cooldown--
	}
	if in.Has(core.ActionFire) && g.cooldown == 0 {
		g.fire()
	}

	g.spawn()
	g.moveEnemies()
	g.moveBullets()
	g.lockedID = g.findLock()

	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// aim steers the desired heading. It may only run Lead degrees ahead of the barrel.
func (g *Game) aim(in core.InputFrame) {
	step := gm.FromDegrees(g.cfg.Turret.AimSpeed)
	if in.Has(core.ActionTurnLeft) {
		g.heading = g.heading.Sub(step)
	}
	if in.Has(core.ActionTurnRight) {
		g.heading = g.heading.Add(step)
	}

	g.heading = g.heading.Clamp(g.barrel, g.cfg.Turret.Lead).Normalized()
}

// turn rotates the barrel toward the heading at a fixed rate.
func (g *Game) turn() {
	g.barrel = g.barrel.MoveToward(g.heading, g.cfg.Turret.TurnSpeed).Normalized()
}

func (g *Game) fire() {
	g.bullets = append(g.bullets, &Bullet{
		Pos: gm.PositionOf(g.barrel.ToCartesian(g.cfg.Turret.BarrelLength)),
		Vel: g.barrel.ToCartesian(g.cfg.Bullets.Speed),
		TTL: g.cfg.Bullets.Lifetime,
	})
	g.cooldown = g.cfg.Bullets.Cooldown
}

// spawn places an enemy on the ring at a random bearing.
func (g *Game) spawn() {
	if g.tickCount < g.nextSpawn {
		return
	}
	g.nextSpawn = g.tickCount + g.difficulty.SpawnInterval(g.cfg.Enemies.SpawnEvery, g.score, g.tickCount)

	if len(g.enemies) >= g.cfg.Enemies.MaxAlive {
		return
	}

	bearing := gm.FromDegrees(g.rng.Float32() * 360)
	g.enemies = append(g.enemies, &Enemy{
		ID:    g.nextID,
		Pos:   gm.PositionOf(bearing.ToCartesian(g.cfg.Enemies.SpawnRadius)),
		Speed: g.difficulty.Speed(g.cfg.Enemies.Speed, g.score, g.tickCount),
	})
	g.nextID++
}

func (g *Game) moveEnemies() {
	var origin gm.Position
	alive := g.enemies[:0]
	for _, e := range g.enemies {
		e.Step(origin)
		if e.Pos.Distance2(origin) <= breachRadius*breachRadius {
			g.lives--
			continue
		}
		alive = append(alive, e)
	}
	clear(g.enemies[len(alive):])
	g.enemies = alive
}

func (g *Game) moveBullets() {
	hit2 := g.cfg.Enemies.HitRadius * g.cfg.Enemies.HitRadius
	limit2 := g.cfg.Enemies.SpawnRadius * g.cfg.Enemies.SpawnRadius * 1.5

	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.Step()
		if b.TTL <= 0 || b.Pos.Distance2(gm.Position{}) > limit2 {
			continue
		}

		if victim := g.enemyAt(b.Pos, hit2); victim >= 0 {
			g.kill(victim)
			continue
		}
		alive = append(alive, b)
	}
	clear(g.bullets[len(alive):])
	g.bullets = alive
}

// enemyAt returns the index of the first enemy within sqrt(r2) of p, or -1.
func (g *Game) enemyAt(p gm.Position, r2 float32) int {
	for i, e := range g.enemies {
		if e.Pos.Distance2(p) <= r2 {
			return i
		}
	}
	return -1
}

func (g *Game) kill(i int) {
	g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
	g.kills++
	g.score += g.cfg.Gameplay.KillPoints
}

// findLock returns the nearest enemy within the lock margin of the barrel.
func (g *Game) findLock() int {
	locked := 0
	var best float32
	for _, e := range g.enemies {
		if !g.barrel.Within(e.Bearing(), g.cfg.Turret.LockMargin) {
			continue
		}
		d := e.Pos.Distance2(gm.Position{})
		if locked == 0 || d < best {
			locked, best = e.ID, d
		}
	}
	return locked
}

// Threats counts enemies whose bearing is under threat_arc degrees from the barrel.
func (g *Game) Threats() int {
	n := 0
	for _, e := range g.enemies {
		if g.barrel.Near(e.Bearing(), g.cfg.Turret.ThreatArc) {
			n++
		}
	}
	return n
}

// Barrel returns the current barrel heading.
func (g *Game) Barrel() gm.Angle {
	return g.barrel
}

// Heading returns the heading the barrel is turning toward.
func (g *Game) Heading() gm.Angle {
	return g.heading
}

// Ticks returns the number of simulated ticks since Reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// State returns the current game state.
func (g *Game) State() core.SceneState {
	return core.SceneState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := playfield(dst)
	cx, cy := field.Center()
	p := core.NewPlotter(dst, cx, cy, RingChar, g.cfg.Ring.ColorValue()).
		WithScale(core.FitScale(field, g.cfg.Ring.Radius)).
		WithClip(field)

	gm.CircleVector(g.cfg.Ring.Points, g.cfg.Ring.Radius, gm.FromDegrees(g.cfg.Ring.Offset), p)

	// Heading marker just inside the ring
	mark := g.heading.ToCartesian(g.cfg.Ring.Radius - 1)
	p.Plot(mark.X(), mark.Y(), HeadingChar, core.ColorGreen)

	for _, e := range g.enemies {
		color := core.ColorWhite
		switch {
		case e.ID == g.lockedID:
			color = core.ColorBrightRed
		case g.barrel.Near(e.Bearing(), g.cfg.Turret.ThreatArc):
			color = core.ColorYellow
		}
		p.Plot(e.Pos.X(), e.Pos.Y(), EnemyChar, color)
	}

	for _, b := range g.bullets {
		p.Plot(b.Pos.X(), b.Pos.Y(), BulletChar, core.ColorBrightYellow)
	}

	tip := g.barrel.ToCartesian(g.cfg.Turret.BarrelLength)
	p.WithStyle(BarrelChar, core.ColorBrightCyan).Line(tip.X(), tip.Y(), BarrelChar)
	dst.SetWithColor(cx, cy, BaseChar, core.ColorBrightWhite)

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// playfield is the screen minus the HUD rows: two at the top, one at the bottom.
func playfield(dst *core.Screen) core.Rect {
	return core.NewRect(0, hudTop, dst.Width(), max(dst.Height()-hudTop-hudBottom, 0))
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawTextWithColor(2, 1, fmt.Sprintf(" Lives: %d ", g.lives), core.ColorBrightRed)

	readout := fmt.Sprintf(" barrel %s  heading %s ", g.barrel, g.heading)
	dst.DrawText(dst.Width()-len([]rune(readout))-2, 0, readout)

	if threats := g.Threats(); threats > 0 {
		dst.DrawTextWithColor(dst.Width()-14, 1, fmt.Sprintf(" threats: %d ", threats), core.ColorYellow)
	}
	if g.lockedID != 0 {
		dst.DrawTextWithColor(2, dst.Height()-1, " LOCKED ", core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := core.CenteredRect(dst, boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

func init() {
	registry.Register(ID, func() registry.Scene {
		return New()
	})
}
