package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blur/internal/buildinfo"
	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
	flagCell   int
)

var windowCmd = &cobra.Command{
	Use:   "window <scene>",
	Short: "Run a scene in a desktop window",
	Long: `Open a desktop window and run the specified scene in it.

The window shows the same character grid as the terminal, drawing each
cell as a colored block. Turning keys can be held down.

Controls:
  A/D, Left/Right  - Turn (hold)
  Space            - Fire / new target
  M, Tab           - Next interpolation mode (compass)
  +/-, ]/[         - More or fewer polygon points (compass)
  P                - Pause
  R                - Restart
  Esc, Q           - Quit

Examples:
  blur window turret
  blur window compass --width 1280 --height 720`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 1920, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 1080, "Window height in pixels")
	windowCmd.Flags().IntVar(&flagCell, "cell", 8, "Cell width in pixels, cells are twice as tall")
}

func runWindow(_ *cobra.Command, args []string) error {
	scene, err := createScene(args[0])
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := window.DefaultOptions(buildinfo.WindowTitle())
	opts.Width = flagWidth
	opts.Height = flagHeight
	opts.Raster = window.Raster{CellW: flagCell, CellH: flagCell * 2}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	return window.Run(scene, store, cfg, opts, logger)
}
