package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/voxtools/spriterig/internal/xfs"
)

const defaultConfigYAML = `version: "1"

# Builder producing the sprite image.
# kind: spritedump  -> built-in oblique voxel renderer
# kind: exec        -> run an external command; the model, front and
#                      back paths are appended as the last three
#                      arguments, in that order.
builder:
  kind: spritedump
  # command: ["cargo", "run", "--example", "spritedump"]
  # params:
  #   fuse_views: false
  #   timeout: 2m

# Image viewer opened on the rendered output. Defaults to the
# platform opener (xdg-open, open, or cmd /C start).
# viewer:
#   command: ["feh", "--reload", "1"]
#   disabled: false

# Output image path, passed to the viewer and rewritten on each build.
output: output.png

watch:
  debounce: 500ms

log:
  to_file: false
  file: logs/spriterig.log
`

// Init writes a commented default configuration file to path. An
// existing file is only overwritten with force.
func Init(path string, force bool) error {
	path = xfs.ExpandTilde(path)

	if xfs.IsRegularFile(path) && !force {
		return fmt.Errorf("config: %s already exists (use --force to overwrite)", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}
