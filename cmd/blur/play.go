package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/platform/tui"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Run a scene in the terminal",
	Long: `Run the specified scene in the terminal.

Controls:
  A/D, Left/Right  - Turn
  Space            - Fire / new target
  M, Tab           - Next interpolation mode (compass)
  +/-, ]/[         - More or fewer polygon points (compass)
  P                - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot to ~/.blur/screenshots
  Esc, Q, Ctrl+C   - Quit

Difficulty options (turret):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  blur play turret
  blur play turret --difficulty hard --seed 42
  blur play compass --config ./my-compass.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	sceneID := args[0]

	scene, err := createScene(sceneID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(scene, store, terminalConfig(), logger)
}

// createScene configures and instantiates a registered scene.
func createScene(sceneID string) (registry.Scene, error) {
	if !registry.Exists(sceneID) {
		return nil, fmt.Errorf("unknown scene %q, run 'blur list' to see available scenes", sceneID)
	}

	configureScene(sceneID)
	return registry.Create(sceneID)
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Scenes still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
