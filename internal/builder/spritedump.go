package builder

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voxtools/spriterig/internal/mapsafe"
	"github.com/voxtools/spriterig/internal/sprite"
	"github.com/voxtools/spriterig/internal/vox"
)

// SpritedumpBuilder renders the first model of a .vox scene as an
// oblique sprite. With view fusion enabled, the front and back
// reference views recolor lattice positions they agree on; otherwise
// the views are accepted but only the model is rendered.
type SpritedumpBuilder struct {
	fuseViews bool
	extent    int
}

// NewSpritedumpBuilder creates the built-in builder. Params may carry
// "fuse_views" (bool) and "lattice_extent" (int).
func NewSpritedumpBuilder(params map[string]any) *SpritedumpBuilder {
	return &SpritedumpBuilder{
		fuseViews: mapsafe.Get(params, "fuse_views", false),
		extent:    mapsafe.Get(params, "lattice_extent", sprite.DefaultLatticeExtent),
	}
}

// Kind returns the spritedump builder identifier.
func (b *SpritedumpBuilder) Kind() Kind {
	return KindSpritedump
}

// Build renders the job's model and writes the output image.
func (b *SpritedumpBuilder) Build(ctx context.Context, job *Job) (*Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.NewString()

	scene, err := vox.Load(job.ModelPath)
	if err != nil {
		return nil, err
	}
	model := &scene.Models[0]

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var img *image.NRGBA
	if b.fuseViews {
		views, err := b.loadViews(job)
		if err != nil {
			return nil, err
		}
		img = sprite.RenderFused(model, &scene.Palette, views, b.extent)
	} else {
		img = sprite.Render(model, &scene.Palette)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := sprite.WriteImage(job.OutputPath, img); err != nil {
		return nil, err
	}

	slog.Debug("Sprite rendered",
		"run_id", runID,
		"model", job.ModelPath,
		"voxels", len(model.Voxels),
		"output", job.OutputPath)

	return &Result{
		RunID:      runID,
		OutputPath: job.OutputPath,
		Duration:   time.Since(start),
	}, nil
}

// loadViews builds the front and back prisms for view fusion.
func (b *SpritedumpBuilder) loadViews(job *Job) ([]*sprite.Prism, error) {
	front, err := b.loadView(job.FrontPath, sprite.ObliqueNorth)
	if err != nil {
		return nil, fmt.Errorf("front view: %w", err)
	}
	back, err := b.loadView(job.BackPath, sprite.ObliqueSouth)
	if err != nil {
		return nil, fmt.Errorf("back view: %w", err)
	}
	return []*sprite.Prism{front, back}, nil
}

func (b *SpritedumpBuilder) loadView(path string, cam sprite.Camera) (*sprite.Prism, error) {
	img, err := sprite.LoadImage(path)
	if err != nil {
		return nil, err
	}
	focus, err := sprite.NewFocusImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sprite.NewPrism(focus, cam), nil
}

// Close implements Builder; the spritedump builder holds no resources.
func (b *SpritedumpBuilder) Close() error {
	return nil
}
