//go:build cgo

// Package window runs a scene in a desktop window with Ebitengine.
// The scene draws into the same character screen it uses in the
// terminal; the window rasterizes that screen cell by cell.
package window

import (
	"errors"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/platform/crash"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

// Options describes the window.
type Options struct {
	Title  string
	Width  int // Window width in pixels
	Height int // Window height in pixels
	Raster Raster
}

// DefaultOptions returns a 1920x1080 window.
func DefaultOptions(title string) Options {
	return Options{
		Title:  title,
		Width:  1920,
		Height: 1080,
		Raster: DefaultRaster(),
	}
}

type game struct {
	*loop
	raster Raster
	input  func() core.InputFrame

	img   *image.RGBA
	frame *ebiten.Image
}

// Update runs one fixed tick.
func (g *game) Update() error {
	done, err := g.step(g.input())
	if done {
		return ebiten.Termination
	}
	return err
}

// Draw rasterizes the last rendered frame.
func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.raster.Size(g.screen)
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}

	g.raster.Draw(g.img, g.screen)
	g.frame.WritePixels(g.img.Pix)

	screen.Fill(Clear)
	screen.DrawImage(g.frame, nil)
}

// Layout keeps the logical size equal to the character grid.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.raster.Size(g.screen)
}

// Run opens the window and blocks until it is closed or the scene quits.
// A panic inside the scene is returned as a *crash.Report.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, opts Options, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("scene", scene.ID())

	if opts.Raster.CellW <= 0 || opts.Raster.CellH <= 0 {
		opts.Raster = DefaultRaster()
	}
	cfg.ScreenW, cfg.ScreenH = opts.Raster.Cells(opts.Width, opts.Height)
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := &game{
		loop:   newLoop(scene, store, cfg, logger),
		raster: opts.Raster,
		input: func() core.InputFrame {
			return buildFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
		},
	}
	if err := g.start(); err != nil {
		return crashed(logger, err)
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(cfg.TickRate)
	logger.Info("window created", "title", opts.Title, "size", []int{opts.Width, opts.Height}, "cells", []int{cfg.ScreenW, cfg.ScreenH})

	logger.Debug("renderer ready", "cell", []int{opts.Raster.CellW, opts.Raster.CellH}, "tps", cfg.TickRate)
	err := ebiten.RunGame(g)
	logger.Info("frame loop stopped", "ticks", g.ticks)

	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return crashed(logger, err)
}

func crashed(logger *log.Logger, err error) error {
	if r, ok := crash.AsReport(err); ok {
		logger.Error("scene crashed", "function", r.Function, "reason", r.Reason)
	}
	return err
}
