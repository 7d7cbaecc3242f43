package config

import (
	"errors"
	"time"
)

// BuilderKind identifies which builder implementation to use.
type BuilderKind string

const (
	// BuilderKindSpritedump is the built-in oblique sprite renderer.
	BuilderKindSpritedump BuilderKind = "spritedump"

	// BuilderKindExec runs a user-supplied external build command.
	BuilderKindExec BuilderKind = "exec"
)

// DefaultDebounce is the watch debounce applied when none is configured.
const DefaultDebounce = 500 * time.Millisecond

// Config holds the main configuration for the tool.
type Config struct {
	Version string        `json:"version"           yaml:"version"`
	Builder BuilderConfig `json:"builder,omitempty" yaml:"builder,omitempty"`
	Viewer  ViewerConfig  `json:"viewer,omitempty"  yaml:"viewer,omitempty"`
	Output  string        `json:"output,omitempty"  yaml:"output,omitempty"`
	Watch   WatchConfig   `json:"watch,omitempty"   yaml:"watch,omitempty"`
	Log     LogConfig     `json:"log,omitempty"     yaml:"log,omitempty"`
}

// BuilderConfig selects and parameterizes the builder.
type BuilderConfig struct {
	Kind    BuilderKind    `json:"kind"              yaml:"kind"`
	Command []string       `json:"command,omitempty" yaml:"command,omitempty"`
	Params  map[string]any `json:"params,omitempty"  yaml:"params,omitempty"`
}

// ViewerConfig configures the detached image viewer process.
type ViewerConfig struct {
	Command  []string `json:"command,omitempty" yaml:"command,omitempty"`
	Disabled bool     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// WatchConfig configures the model file watch loop.
type WatchConfig struct {
	// Debounce is a duration string such as "500ms".
	Debounce string `json:"debounce,omitempty" yaml:"debounce,omitempty"`
}

// LogConfig configures logging output.
type LogConfig struct {
	ToFile bool   `json:"to_file,omitempty" yaml:"to_file,omitempty"`
	File   string `json:"file,omitempty"    yaml:"file,omitempty"`
}

// Error definitions for the config package.
var (
	ErrNoBuilderCommand = errors.New("exec builder requires a command")
	ErrUnknownBuilder   = errors.New("unknown builder kind")
)

// DebounceOrDefault parses the configured debounce, falling back to
// DefaultDebounce when unset or unparseable.
func (w WatchConfig) DebounceOrDefault() time.Duration {
	if w.Debounce == "" {
		return DefaultDebounce
	}
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// Validate checks cross-field constraints the schema cannot express.
func (c *Config) Validate() error {
	switch c.Builder.Kind {
	case BuilderKindSpritedump, "":
	case BuilderKindExec:
		if len(c.Builder.Command) == 0 {
			return ErrNoBuilderCommand
		}
	default:
		return ErrUnknownBuilder
	}
	return nil
}
