package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v3"

	"github.com/voxtools/spriterig/internal/envvar"
	"github.com/voxtools/spriterig/internal/xfs"
)

// LoadAndValidate loads the configuration file at path, validates it
// against the embedded schema, and decodes it over the defaults.
func LoadAndValidate(path string) (*Config, error) {
	data, err := os.ReadFile(xfs.ExpandTilde(path))
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: invalid YAML in %s: %w", path, err)
	}

	schema, err := jsonschema.CompileString("spriterig.schema.json", schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("config: failed to compile schema: %w", err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("config: validation failed for %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal %s: %w", path, err)
	}

	fillDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve picks the configuration to use. An explicit path must exist.
// Otherwise SPRITERIG_CONFIG is honored, then the per-OS default
// location, and finally the built-in defaults.
func Resolve(explicit string) (*Config, error) {
	// A .env alongside the invocation may carry SPRITERIG_* overrides.
	_ = godotenv.Load()

	if explicit != "" {
		return LoadAndValidate(explicit)
	}

	if fromEnv := os.Getenv(envvar.SpriterigConfig); fromEnv != "" {
		return LoadAndValidate(fromEnv)
	}

	candidate := filepath.Join(DefaultConfigPath(), "config.yaml")
	if xfs.IsRegularFile(candidate) {
		return LoadAndValidate(candidate)
	}

	cfg := Default()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// fillDefaults patches holes a sparse config file leaves behind.
func fillDefaults(cfg *Config) {
	if cfg.Builder.Kind == "" {
		cfg.Builder.Kind = BuilderKindSpritedump
	}
	if len(cfg.Viewer.Command) == 0 {
		cfg.Viewer.Command = DefaultViewerCommand()
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "logs/spriterig.log"
	}
}

func applyEnvOverrides(cfg *Config) {
	if out := os.Getenv(envvar.SpriterigOutput); out != "" {
		cfg.Output = out
	}
	if viewer := os.Getenv(envvar.SpriterigViewer); viewer != "" {
		cfg.Viewer.Command = strings.Fields(viewer)
	}
}
