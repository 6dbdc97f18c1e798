// Package compass implements an interactive angle demo.
// A needle chases a target heading with one of the interpolation modes of
// gm.Angle while a readout shows the values involved.
package compass

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blur/internal/config"
	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/gm"
	"github.com/vovakirdan/blur/internal/registry"
)

// ID is the registry key of the scene.
const ID = "compass"

// Visual characters for rendering
const (
	HubChar    = '●'
	NeedleChar = '•'
	TargetChar = '◎'
	VertexChar = '◇'
	AxisChar   = '·'
)

// Top-left cell of the readout.
const (
	readoutX = 2
	readoutY = 1
)

// Snap distance for the "on target" indicator, in degrees.
const onTargetMargin = 0.5

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the compass demo.
type Scene struct {
	needle gm.Angle
	target gm.Angle
	mode   int // index into config.Modes
	points int

	paused    bool
	tickCount int

	rng      *rand.Rand
	cfg      config.CompassConfig
	fixedCfg bool
}

// New creates a compass scene that loads its config on Reset.
func New() *Scene {
	return &Scene{}
}

// NewWithConfig creates a compass scene with a fixed config.
func NewWithConfig(cfg config.CompassConfig) *Scene {
	return &Scene{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return ID
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return "Compass"
}

// Reset initializes or restarts the scene.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	if !s.fixedCfg {
		cfg, err := config.LoadCompass(configPath)
		if err != nil {
			cfg = config.DefaultCompassConfig()
		}
		s.cfg = cfg
	}

	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.needle = gm.Up()
	s.target = gm.Right()
	s.mode = modeIndex(s.cfg.Mode)
	s.points = s.cfg.Polygon.Points
	s.paused = false
	s.tickCount = 0
}

func modeIndex(mode string) int {
	for i, m := range config.Modes {
		if m == mode {
			return i
		}
	}
	return 0
}

// Step advances the scene by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.tickCount++

	step := gm.FromDegrees(s.cfg.Target.Step)
	if in.Has(core.ActionTurnLeft) {
		s.target = s.target.Sub(step)
	}
	if in.Has(core.ActionTurnRight) {
		s.target = s.target.Add(step)
	}
	if in.Has(core.ActionFire) {
		s.target = gm.FromDegrees(s.rng.Float32()*720 - 360)
	}
	if in.Has(core.ActionMode) {
		s.mode = (s.mode + 1) % len(config.Modes)
	}
	if in.Has(core.ActionMore) {
		s.points++
	}
	if in.Has(core.ActionFewer) {
		s.points--
	}
	s.points = core.Clamp(s.points, s.cfg.Limits.MinPoints, s.cfg.Limits.MaxPoints)

	s.needle = s.advance()

	return core.StepResult{State: s.State()}
}

// advance moves the needle one tick toward the target using the current mode.
func (s *Scene) advance() gm.Angle {
	n := s.cfg.Needle
	switch s.Mode() {
	case config.ModeLerp:
		return s.needle.Lerp(s.target, n.LerpFactor)
	case config.ModeSlerp:
		return s.needle.Slerp(s.target, n.LerpFactor)
	case config.ModeClamp:
		return s.needle.Clamp(s.target, n.ClampRange)
	default:
		return s.needle.MoveToward(s.target, n.TurnSpeed)
	}
}

// Needle returns the needle heading.
func (s *Scene) Needle() gm.Angle {
	return s.needle
}

// Target returns the heading the needle is chasing.
func (s *Scene) Target() gm.Angle {
	return s.target
}

// Mode returns the active interpolation mode.
func (s *Scene) Mode() string {
	return config.Modes[s.mode]
}

// Points returns the vertex count of the polygon.
func (s *Scene) Points() int {
	return s.points
}

// State returns the current scene state. The demo has no score and never ends.
func (s *Scene) State() core.SceneState {
	return core.SceneState{Paused: s.paused}
}

// Render draws the dial and the readout.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	lines := s.Readout()
	dial := s.dialRect(dst, readoutRect(lines))
	cx, cy := dial.Center()

	// Compass axes under everything else.
	dst.DrawHLine(dial.X, cy, dial.W, AxisChar, core.ColorGray)
	dst.DrawVLine(cx, dial.Y, dial.H, AxisChar, core.ColorGray)

	radius := s.cfg.Polygon.Radius
	p := core.NewPlotter(dst, cx, cy, VertexChar, s.cfg.Polygon.ColorValue()).
		WithScale(core.FitScale(dst.Bounds(), radius)).
		WithClip(dial)

	gm.CircleVector(s.points, radius, gm.FromDegrees(s.cfg.Polygon.Offset), p)

	t := s.target.ToCartesian(radius)
	p.Plot(t.X(), t.Y(), TargetChar, core.ColorBrightGreen)

	tip := s.needle.ToCartesian(s.cfg.Needle.Length)
	p.WithStyle(NeedleChar, core.ColorBrightRed).Line(tip.X(), tip.Y(), NeedleChar)
	dst.SetWithColor(cx, cy, HubChar, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawTextWithColor(readoutX, readoutY+i, line, core.ColorGray)
	}
	dst.DrawText(readoutX, dst.Height()-2, "←/→ target  space random  m mode  +/- points")

	if s.paused {
		dst.DrawTextCentered(dst.Height()-1, "PAUSED - press P to resume")
	}
}

// dialRect places the dial in the middle of the screen, or in the space
// right of the readout when the two would overlap and that space is wide enough.
func (s *Scene) dialRect(dst *core.Screen, readout core.Rect) core.Rect {
	radius := max(s.cfg.Polygon.Radius, s.cfg.Needle.Length)
	scaled := radius * core.FitScale(dst.Bounds(), s.cfg.Polygon.Radius)

	cx, cy := dst.Center()
	dial := core.RectAround(cx, cy, core.Round(scaled*core.CellAspect), core.Round(scaled))
	if !dial.Intersects(readout) {
		return dial
	}

	free := dst.Width() - readout.Right()
	if free < dial.W {
		return dial
	}
	dial.X = readout.Right() + (free-dial.W)/2
	return dial
}

// readoutRect is the block of cells the readout lines cover.
func readoutRect(lines []string) core.Rect {
	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	return core.NewRect(readoutX, readoutY, w, len(lines))
}

// Readout returns the text lines shown next to the dial.
func (s *Scene) Readout() []string {
	needle, target := s.needle, s.target
	onTarget := "no"
	if needle.Within(target, onTargetMargin) {
		onTarget = "yes"
	}

	return []string{
		fmt.Sprintf("mode     %s", s.Mode()),
		fmt.Sprintf("points   %d", s.points),
		"",
		fmt.Sprintf("target   %s", target),
		fmt.Sprintf("  norm   %s", target.Normalized()),
		fmt.Sprintf("  signed %s", target.SignedNormalized()),
		fmt.Sprintf("  rad    %.3f", target.Radians()),
		fmt.Sprintf("  kind   %s", Classify(target)),
		"",
		fmt.Sprintf("needle   %s", needle),
		fmt.Sprintf("  norm   %s", needle.Normalized()),
		fmt.Sprintf("  kind   %s", Classify(needle)),
		"",
		fmt.Sprintf("cw       %.2f", needle.ClockwiseDistance(target)),
		fmt.Sprintf("ccw      %.2f", needle.CounterClockwiseDistance(target)),
		fmt.Sprintf("shortest %.2f", needle.ShortestDistance(target)),
		fmt.Sprintf("on target %s", onTarget),
	}
}

// Classify names the normalized angle: acute, right, obtuse, straight or reflex.
func Classify(a gm.Angle) string {
	switch {
	case a.IsAcute():
		return "acute"
	case a.IsObtuse():
		return "obtuse"
	case a.IsReflex():
		return "reflex"
	case a.Normalized() == gm.Quarter():
		return "right"
	default:
		return "straight"
	}
}

func init() {
	registry.Register(ID, func() registry.Scene {
		return New()
	})
}
