package main

import (
	"context"
	"log/slog"

	"github.com/voxtools/spriterig/internal/builder"
	"github.com/voxtools/spriterig/internal/session"
)

// RenderCmd runs a single build: model, front and back are handed to
// the configured builder in that exact order.
type RenderCmd struct {
	Model  string `arg:"" help:"Voxel model path (.vox)."`
	Front  string `arg:"" help:"Front reference view image."`
	Back   string `arg:"" help:"Back reference view image."`
	Output string `short:"o" help:"Output image path (overrides config)."`
}

func (r *RenderCmd) Run(g *Global) error {
	cfg := g.Config
	if r.Output != "" {
		cfg.Output = r.Output
	}

	job := &builder.Job{
		ModelPath:  r.Model,
		FrontPath:  r.Front,
		BackPath:   r.Back,
		OutputPath: cfg.Output,
	}

	s, err := session.New(cfg, job)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.RunOnce(context.Background())
	if err != nil {
		return err
	}

	slog.Info("Build completed",
		"run_id", result.RunID,
		"output", result.OutputPath,
		"duration", result.Duration)
	return nil
}
