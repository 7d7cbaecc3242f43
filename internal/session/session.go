// Package session orchestrates the build, view, watch workflow.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voxtools/spriterig/internal/builder"
	"github.com/voxtools/spriterig/internal/config"
	"github.com/voxtools/spriterig/internal/viewer"
	"github.com/voxtools/spriterig/internal/watch"
)

// Session runs builds for a fixed job: an initial build, an optional
// detached viewer on the output, and a watch loop that re-issues the
// identical build each time the model file changes.
type Session struct {
	cfg      *config.Config
	job      *builder.Job
	registry *builder.Registry
	builder  builder.Builder
	viewer   *viewer.Manager
}

// New wires a session from configuration. The job's paths are used
// verbatim for every build cycle.
func New(cfg *config.Config, job *builder.Job) (*Session, error) {
	reg, err := builder.NewRegistryFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	b, err := builder.Select(reg, cfg)
	if err != nil {
		reg.Close()
		return nil, err
	}

	return &Session{
		cfg:      cfg,
		job:      job,
		registry: reg,
		builder:  b,
		viewer:   viewer.New(),
	}, nil
}

// RunOnce performs a single build and returns its result.
func (s *Session) RunOnce(ctx context.Context) (*builder.Result, error) {
	return s.builder.Build(ctx, s.job)
}

// Run executes the full workflow until ctx is canceled. The initial
// build completes before the viewer is launched, so the output file
// exists when the viewer opens it. A build failure during a watch
// cycle is reported and the loop keeps watching; nothing is retried
// and no error is swallowed into silence.
func (s *Session) Run(ctx context.Context) error {
	result, err := s.RunOnce(ctx)
	if err != nil {
		return fmt.Errorf("initial build: %w", err)
	}
	slog.Info("Build completed",
		"run_id", result.RunID,
		"output", result.OutputPath,
		"duration", result.Duration)

	if !s.cfg.Viewer.Disabled {
		if err := s.viewer.Start(s.cfg.Viewer.Command, s.cfg.Output); err != nil {
			// The viewer is fire-and-forget; a broken viewer must not
			// stop the watch loop.
			slog.Error("Failed to start viewer", "error", err)
		}
	}
	defer s.viewer.Stop()

	w := watch.New(s.job.ModelPath, s.cfg.Watch.DebounceOrDefault())
	events, err := w.Start(ctx)
	if err != nil {
		return err
	}

	slog.Info("Watching model for changes",
		"model", s.job.ModelPath,
		"debounce", s.cfg.Watch.DebounceOrDefault())

	for range events {
		result, err := s.RunOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			slog.Error("Build failed", "model", s.job.ModelPath, "error", err)
			continue
		}
		slog.Info("Rebuilt",
			"run_id", result.RunID,
			"output", result.OutputPath,
			"duration", result.Duration)
	}

	return nil
}

// Close releases the session's builders.
func (s *Session) Close() error {
	return s.registry.Close()
}
