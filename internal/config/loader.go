package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the per-user directory under $HOME holding scene overrides.
const ConfigDir = ".blur"

// LoadTurret loads the turret configuration.
// Search order: customPath -> ~/.blur/configs/turret.yaml -> ./configs/turret.yaml -> embedded default
func LoadTurret(customPath string) (TurretConfig, error) {
	cfg, err := load("turret", customPath, DefaultTurretConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadCompass loads the compass configuration.
// Search order: customPath -> ~/.blur/configs/compass.yaml -> ./configs/compass.yaml -> embedded default
func LoadCompass(customPath string) (CompassConfig, error) {
	cfg, err := load("compass", customPath, DefaultCompassConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load resolves a scene config. Values missing from a file keep the
// hard-coded defaults. Only a custom path is allowed to fail loudly,
// the other locations are skipped when unreadable.
func load[T any](sceneID, customPath string, defaults func() T) (T, error) {
	filename := sceneID + ".yaml"

	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(sceneID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, "configs", filename)
}

// ApplyDifficulty applies a preset to a difficulty block.
func ApplyDifficulty(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyTurretPreset modifies the turret config based on a difficulty preset.
func ApplyTurretPreset(cfg *TurretConfig, preset DifficultyPreset) {
	ApplyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Turret.LockMargin = 10
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Turret.Lead = 25
	}
}
