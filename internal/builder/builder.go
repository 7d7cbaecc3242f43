// Package builder turns a (model, front, back) argument triple into a
// sprite image, either with the built-in renderer or by delegating to
// an external command.
package builder

import (
	"context"
	"time"
)

// Kind identifies a builder implementation.
type Kind string

const (
	KindSpritedump Kind = "spritedump"
	KindExec       Kind = "exec"
)

// Job carries the caller-supplied paths for one build, verbatim.
type Job struct {
	// ModelPath is the voxel model to render.
	ModelPath string

	// FrontPath and BackPath are the front and back reference views.
	FrontPath string
	BackPath  string

	// OutputPath is where the rendered image is written.
	OutputPath string
}

// Args returns the positional arguments in invocation order:
// model, front, back.
func (j *Job) Args() []string {
	return []string{j.ModelPath, j.FrontPath, j.BackPath}
}

// Validate checks that all paths are present.
func (j *Job) Validate() error {
	if j.ModelPath == "" || j.FrontPath == "" || j.BackPath == "" {
		return ErrEmptyArgument
	}
	if j.OutputPath == "" {
		return ErrNoOutputPath
	}
	return nil
}

// Result describes one completed build.
type Result struct {
	// RunID uniquely identifies the build cycle in logs.
	RunID string

	OutputPath string
	Duration   time.Duration
}

// Builder is the core interface for all build implementations.
type Builder interface {
	// Kind returns the builder identifier.
	Kind() Kind

	// Build runs one build for the job and reports the result.
	Build(ctx context.Context, job *Job) (*Result, error)

	// Close cleans up resources.
	Close() error
}
