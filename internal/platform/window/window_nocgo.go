//go:build !cgo

// Package window runs a scene in a desktop window with Ebitengine.
// Without cgo there is no window backend and Run always fails.
package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

// ErrUnsupported is returned by Run in builds without cgo.
var ErrUnsupported = errors.New("window: built without cgo, use the terminal instead")

// Options describes the window.
type Options struct {
	Title  string
	Width  int
	Height int
	Raster Raster
}

// DefaultOptions returns a 1920x1080 window.
func DefaultOptions(title string) Options {
	return Options{Title: title, Width: 1920, Height: 1080, Raster: DefaultRaster()}
}

// Run reports ErrUnsupported.
func Run(registry.Scene, *storage.Store, core.RuntimeConfig, Options, *log.Logger) error {
	return ErrUnsupported
}
