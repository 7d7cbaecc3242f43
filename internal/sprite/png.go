package sprite

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// LoadImage decodes the PNG view image at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: failed to decode %s: %w", path, err)
	}
	return img, nil
}

// WriteImage encodes img as PNG at path, replacing any existing file.
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sprite: failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("sprite: failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("sprite: failed to write %s: %w", path, err)
	}
	return nil
}
