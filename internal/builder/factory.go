package builder

import (
	"fmt"

	"github.com/voxtools/spriterig/internal/config"
)

// NewRegistryFromConfig registers every builder the configuration can
// support: the built-in renderer always, the exec builder when a
// command is configured.
func NewRegistryFromConfig(cfg *config.Config) (*Registry, error) {
	reg := NewRegistry()
	reg.Register(NewSpritedumpBuilder(cfg.Builder.Params))

	if len(cfg.Builder.Command) > 0 {
		eb, err := NewExecBuilder(cfg.Builder.Command, cfg.Builder.Params)
		if err != nil {
			return nil, err
		}
		reg.Register(eb)
	}

	return reg, nil
}

// Select resolves the configured builder kind against the registry.
func Select(reg *Registry, cfg *config.Config) (Builder, error) {
	kind := Kind(cfg.Builder.Kind)
	if kind == "" {
		kind = KindSpritedump
	}

	b, ok := reg.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, kind)
	}
	return b, nil
}
