package main

import (
	"github.com/voxtools/spriterig/internal/viewer"
)

// ViewCmd opens the configured image viewer, detached, and exits.
type ViewCmd struct {
	Image string `arg:"" optional:"" help:"Image to open (defaults to the configured output path)."`
}

func (v *ViewCmd) Run(g *Global) error {
	target := v.Image
	if target == "" {
		target = g.Config.Output
	}

	// Detached on purpose; the viewer outlives this process.
	return viewer.New().Start(g.Config.Viewer.Command, target)
}
