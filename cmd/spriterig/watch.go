package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/voxtools/spriterig/internal/builder"
	"github.com/voxtools/spriterig/internal/session"
)

// WatchCmd runs the full workflow: one build, a detached viewer on the
// output image, then a foreground watch loop re-running the identical
// build on every model change until interrupted.
type WatchCmd struct {
	Model    string `arg:"" help:"Voxel model path (.vox) to build and watch."`
	Front    string `arg:"" help:"Front reference view image."`
	Back     string `arg:"" help:"Back reference view image."`
	Output   string `short:"o" help:"Output image path (overrides config)."`
	NoViewer bool   `help:"Do not launch the image viewer."`
	Debounce string `help:"Debounce window for change events (e.g. 500ms, overrides config)."`
}

func (w *WatchCmd) Run(g *Global) error {
	cfg := g.Config
	if w.Output != "" {
		cfg.Output = w.Output
	}
	if w.NoViewer {
		cfg.Viewer.Disabled = true
	}
	if w.Debounce != "" {
		cfg.Watch.Debounce = w.Debounce
	}

	job := &builder.Job{
		ModelPath:  w.Model,
		FrontPath:  w.Front,
		BackPath:   w.Back,
		OutputPath: cfg.Output,
	}

	s, err := session.New(cfg, job)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return s.Run(ctx)
}
