package env

import (
	"os"
	"strings"

	"github.com/voxtools/spriterig/internal/envvar"
)

// Environment identifies the runtime environment of the process.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv determines the environment from SPRITERIG_ENV.
// Unset or unrecognized values default to development.
func FromEnv() Environment {
	switch strings.ToLower(os.Getenv(envvar.SpriterigEnv)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development
}
