package config

import (
	_ "embed"
)

//go:embed defaults/turret.yaml
var defaultTurretYAML []byte

//go:embed defaults/compass.yaml
var defaultCompassYAML []byte

// DefaultTurretConfig returns the hard-coded turret configuration.
func DefaultTurretConfig() TurretConfig {
	return TurretConfig{
		Turret: TurretTurret{
			TurnSpeed:    4,
			AimSpeed:     6,
			Lead:         45,
			BarrelLength: 3,
			LockMargin:   6,
			ThreatArc:    30,
		},
		Enemies: TurretEnemies{
			SpawnRadius: 10,
			Speed:       0.04,
			SpawnEvery:  90,
			HitRadius:   0.8,
			MaxAlive:    8,
		},
		Bullets: TurretBullets{
			Speed:    0.5,
			Lifetime: 30,
			Cooldown: 8,
		},
		Gameplay: TurretGameplay{
			Lives:      3,
			KillPoints: 10,
		},
		Ring: RingConfig{
			Points: 48,
			Radius: 10,
			Color:  "gray",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				SpawnReduction:  60,
			},
		},
	}
}

// DefaultCompassConfig returns the hard-coded compass configuration.
func DefaultCompassConfig() CompassConfig {
	return CompassConfig{
		Needle: CompassNeedle{
			Length:     8,
			TurnSpeed:  2,
			LerpFactor: 0.08,
			ClampRange: 30,
		},
		Target: CompassTarget{
			Step: 15,
		},
		Polygon: RingConfig{
			Points: 6,
			Radius: 9,
			Color:  "cyan",
		},
		Limits: PolygonLimits{
			MinPoints: 1,
			MaxPoints: 64,
		},
		Mode: ModeMove,
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case "turret":
		return defaultTurretYAML
	case "compass":
		return defaultCompassYAML
	default:
		return nil
	}
}
