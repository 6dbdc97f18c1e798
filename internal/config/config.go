// Package config provides YAML-based scene configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blur/internal/core"
)

// TurretConfig contains all configuration for the turret scene.
type TurretConfig struct {
	Turret     TurretTurret     `yaml:"turret"`
	Enemies    TurretEnemies    `yaml:"enemies"`
	Bullets    TurretBullets    `yaml:"bullets"`
	Gameplay   TurretGameplay   `yaml:"gameplay"`
	Ring       RingConfig       `yaml:"ring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TurretTurret defines how the turret aims.
type TurretTurret struct {
	TurnSpeed    float32 `yaml:"turn_speed"`    // Barrel degrees per tick
	AimSpeed     float32 `yaml:"aim_speed"`     // Heading degrees per tick while a turn key is held
	Lead         float32 `yaml:"lead"`          // Max degrees the heading may run ahead of the barrel
	BarrelLength float32 `yaml:"barrel_length"` // World units
	LockMargin   float32 `yaml:"lock_margin"`   // Degrees within which an enemy counts as locked
	ThreatArc    float32 `yaml:"threat_arc"`    // Degrees under which an enemy is flagged as a threat
}

// TurretEnemies defines enemy spawning and movement.
type TurretEnemies struct {
	SpawnRadius float32 `yaml:"spawn_radius"` // World units from the turret
	Speed       float32 `yaml:"speed"`        // World units per tick
	SpawnEvery  int     `yaml:"spawn_every"`  // Ticks between spawns
	HitRadius   float32 `yaml:"hit_radius"`   // Bullet collision radius
	MaxAlive    int     `yaml:"max_alive"`
}

// TurretBullets defines projectile parameters.
type TurretBullets struct {
	Speed    float32 `yaml:"speed"`    // World units per tick
	Lifetime int     `yaml:"lifetime"` // Ticks
	Cooldown int     `yaml:"cooldown"` // Ticks between shots
}

// TurretGameplay defines scoring and lives.
type TurretGameplay struct {
	Lives      int `yaml:"lives"`
	KillPoints int `yaml:"kill_points"`
}

// RingConfig describes a polygon drawn with circle vertices.
type RingConfig struct {
	Points int     `yaml:"points"`
	Radius float32 `yaml:"radius"`
	Offset float32 `yaml:"offset"` // Degrees
	Color  string  `yaml:"color"`
}

// ColorValue resolves the configured color name.
func (r RingConfig) ColorValue() core.Color {
	c, _ := core.ParseColor(r.Color)
	return c
}

// CompassConfig contains all configuration for the compass scene.
type CompassConfig struct {
	Needle  CompassNeedle `yaml:"needle"`
	Target  CompassTarget `yaml:"target"`
	Polygon RingConfig    `yaml:"polygon"`
	Limits  PolygonLimits `yaml:"limits"`
	Mode    string        `yaml:"mode"` // "move", "lerp", "slerp" or "clamp"
}

// CompassNeedle defines how the needle chases the target.
type CompassNeedle struct {
	Length     float32 `yaml:"length"`
	TurnSpeed  float32 `yaml:"turn_speed"`  // Degrees per tick for move mode
	LerpFactor float32 `yaml:"lerp_factor"` // Fraction per tick for lerp and slerp
	ClampRange float32 `yaml:"clamp_range"` // Degrees the needle may lag in clamp mode
}

// CompassTarget defines how the target heading is steered.
type CompassTarget struct {
	Step float32 `yaml:"step"` // Degrees per key press
}

// PolygonLimits bounds the adjustable polygon point count.
type PolygonLimits struct {
	MinPoints int `yaml:"min_points"`
	MaxPoints int `yaml:"max_points"`
}

// Compass modes.
const (
	ModeMove  = "move"
	ModeLerp  = "lerp"
	ModeSlerp = "slerp"
	ModeClamp = "clamp"
)

// Modes lists the compass modes in cycling order.
var Modes = []string{ModeMove, ModeLerp, ModeSlerp, ModeClamp}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

var (
	errNoTurnSpeed = errors.New("turn_speed must be positive")
	errNoPoints    = errors.New("points must be positive")
)

// Validate checks the values the scene cannot run without.
func (c TurretConfig) Validate() error {
	switch {
	case c.Turret.TurnSpeed <= 0:
		return fmt.Errorf("config: turret: %w", errNoTurnSpeed)
	case c.Ring.Points <= 0:
		return fmt.Errorf("config: turret ring: %w", errNoPoints)
	case c.Enemies.SpawnRadius <= 0:
		return errors.New("config: turret: spawn_radius must be positive")
	case c.Bullets.Speed <= 0:
		return errors.New("config: turret: bullet speed must be positive")
	case c.Gameplay.Lives <= 0:
		return errors.New("config: turret: lives must be positive")
	}
	return nil
}

// Validate checks the values the scene cannot run without.
func (c CompassConfig) Validate() error {
	switch {
	case c.Needle.TurnSpeed <= 0:
		return fmt.Errorf("config: compass needle: %w", errNoTurnSpeed)
	case c.Limits.MinPoints <= 0:
		return fmt.Errorf("config: compass limits: %w", errNoPoints)
	case c.Limits.MaxPoints < c.Limits.MinPoints:
		return fmt.Errorf("config: compass limits: invalid range [%d, %d]", c.Limits.MinPoints, c.Limits.MaxPoints)
	case c.Polygon.Points < c.Limits.MinPoints || c.Polygon.Points > c.Limits.MaxPoints:
		return fmt.Errorf("config: compass polygon: %d points outside [%d, %d]", c.Polygon.Points, c.Limits.MinPoints, c.Limits.MaxPoints)
	}

	for _, m := range Modes {
		if m == c.Mode {
			return nil
		}
	}
	return fmt.Errorf("config: compass: unknown mode %q", c.Mode)
}
