package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blur/internal/platform/tui"
	"github.com/vovakirdan/blur/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start blur with a scene picker menu",
	Long: `Start blur in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
Leaving a scene returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scene
  Tab          - Scoreboard
  Q            - Quit

Examples:
  blur menu
  blur menu --fps 30
  blur menu --db ./blur.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	configureScene("")
	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		scene, err := registry.Create(result.SceneID)
		if err != nil {
			logger.Error("cannot create scene", "error", err)
			continue
		}

		// A fixed --seed replays the same run every time.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(scene, store, cfg, logger); err != nil {
			logger.Error("scene stopped", "scene", result.SceneID, "error", err)
		}
	}
}
