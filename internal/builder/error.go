package builder

import "errors"

// Error definitions for the builder package.
var (
	ErrNotFound      = errors.New("builder not found in registry")
	ErrEmptyArgument = errors.New("model, front and back paths must be non-empty")
	ErrNoOutputPath  = errors.New("output path must be non-empty")
	ErrNoCommand     = errors.New("exec builder requires a non-empty command")
)
