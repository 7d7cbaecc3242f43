package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultOutput is the output image written by a build when the config
// does not override it.
const DefaultOutput = "output.png"

// DefaultConfigPath returns the default path for the spriterig config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "spriterig", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "spriterig")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "spriterig")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "spriterig")
		}
		return filepath.Join(home, ".config", "spriterig")
	}
}

// DefaultViewerCommand returns the platform's opener command. The
// output path is appended as the final argument when launching.
func DefaultViewerCommand() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"cmd", "/C", "start", ""}
	case "darwin":
		return []string{"open"}
	default:
		return []string{"xdg-open"}
	}
}

// Default returns a fully populated configuration usable without any
// config file on disk.
func Default() *Config {
	return &Config{
		Version: "1",
		Builder: BuilderConfig{
			Kind: BuilderKindSpritedump,
		},
		Viewer: ViewerConfig{
			Command: DefaultViewerCommand(),
		},
		Output: DefaultOutput,
		Watch:  WatchConfig{},
		Log: LogConfig{
			File: "logs/spriterig.log",
		},
	}
}
