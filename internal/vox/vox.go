// Package vox reads MagicaVoxel .vox scenes: the "VOX " magic, a
// version number, and a RIFF-style chunk tree rooted at MAIN with
// SIZE/XYZI pairs per model and an optional RGBA palette.
package vox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Color is an RGBA palette entry.
type Color struct {
	R, G, B, A uint8
}

// Voxel is a single filled cell. I indexes the scene palette.
type Voxel struct {
	X, Y, Z, I uint8
}

// Model is one voxel grid from a scene.
type Model struct {
	SizeX, SizeY, SizeZ uint32
	Voxels              []Voxel
}

// Scene is a decoded .vox file.
type Scene struct {
	Models  []Model
	Palette [256]Color
}

// Error definitions for the vox package.
var (
	ErrBadMagic  = errors.New("not a VOX file")
	ErrTruncated = errors.New("truncated chunk data")
	ErrNoModels  = errors.New("scene contains no models")
)

const magic = "VOX "

// Load reads and decodes the .vox file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vox: failed to read %s: %w", path, err)
	}
	scene, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("vox: %s: %w", path, err)
	}
	return scene, nil
}

// Decode parses a .vox stream.
func Decode(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 8 || string(data[:4]) != magic {
		return nil, ErrBadMagic
	}
	// data[4:8] is the format version; all versions we care about share
	// the chunk layout below.

	scene := &Scene{Palette: defaultPalette()}

	body := data[8:]
	main, _, rest, err := readChunk(body)
	if err != nil {
		return nil, err
	}
	if main.id != "MAIN" {
		return nil, fmt.Errorf("expected MAIN chunk, got %q", main.id)
	}
	_ = rest // trailing bytes after MAIN are ignored

	if err := scene.parseChildren(main.children); err != nil {
		return nil, err
	}
	if len(scene.Models) == 0 {
		return nil, ErrNoModels
	}
	return scene, nil
}

type chunk struct {
	id       string
	content  []byte
	children []byte
}

func readChunk(b []byte) (chunk, int, []byte, error) {
	if len(b) < 12 {
		return chunk{}, 0, nil, ErrTruncated
	}
	id := string(b[:4])
	contentLen := binary.LittleEndian.Uint32(b[4:8])
	childrenLen := binary.LittleEndian.Uint32(b[8:12])
	total := 12 + int(contentLen) + int(childrenLen)
	if total > len(b) {
		return chunk{}, 0, nil, fmt.Errorf("%w: chunk %q", ErrTruncated, id)
	}
	c := chunk{
		id:       id,
		content:  b[12 : 12+contentLen],
		children: b[12+contentLen : total],
	}
	return c, total, b[total:], nil
}

func (s *Scene) parseChildren(b []byte) error {
	var pending *Model

	for len(b) > 0 {
		c, _, rest, err := readChunk(b)
		if err != nil {
			return err
		}
		b = rest

		switch c.id {
		case "PACK":
			// Model count; models are discovered from SIZE/XYZI pairs
			// anyway, so the count is informational.
		case "SIZE":
			if len(c.content) < 12 {
				return fmt.Errorf("%w: SIZE", ErrTruncated)
			}
			s.Models = append(s.Models, Model{
				SizeX: binary.LittleEndian.Uint32(c.content[0:4]),
				SizeY: binary.LittleEndian.Uint32(c.content[4:8]),
				SizeZ: binary.LittleEndian.Uint32(c.content[8:12]),
			})
			pending = &s.Models[len(s.Models)-1]
		case "XYZI":
			if pending == nil {
				return errors.New("XYZI chunk without preceding SIZE")
			}
			if err := pending.parseVoxels(c.content); err != nil {
				return err
			}
			pending = nil
		case "RGBA":
			if err := s.parsePalette(c.content); err != nil {
				return err
			}
		default:
			// Scene-graph and material chunks (nTRN, nGRP, MATL, ...)
			// are not needed for sprite rendering.
		}
	}
	return nil
}

func (m *Model) parseVoxels(content []byte) error {
	if len(content) < 4 {
		return fmt.Errorf("%w: XYZI", ErrTruncated)
	}
	n := binary.LittleEndian.Uint32(content[0:4])
	if len(content) < 4+int(n)*4 {
		return fmt.Errorf("%w: XYZI voxel list", ErrTruncated)
	}
	m.Voxels = make([]Voxel, n)
	for i := range m.Voxels {
		off := 4 + i*4
		m.Voxels[i] = Voxel{
			X: content[off],
			Y: content[off+1],
			Z: content[off+2],
			I: content[off+3],
		}
	}
	return nil
}

// parsePalette maps file palette entry i to scene palette index i+1, so
// a voxel's color index addresses the palette directly. Index 0 stays
// transparent.
func (s *Scene) parsePalette(content []byte) error {
	if len(content) < 256*4 {
		return fmt.Errorf("%w: RGBA", ErrTruncated)
	}
	s.Palette[0] = Color{}
	for i := 0; i < 255; i++ {
		off := i * 4
		s.Palette[i+1] = Color{
			R: content[off],
			G: content[off+1],
			B: content[off+2],
			A: content[off+3],
		}
	}
	return nil
}

// At returns the voxel at (x, y, z), if any. It scans linearly; callers
// doing many lookups should build a map with Index instead.
func (m *Model) At(x, y, z uint8) (Voxel, bool) {
	for _, v := range m.Voxels {
		if v.X == x && v.Y == y && v.Z == z {
			return v, true
		}
	}
	return Voxel{}, false
}

// Index returns a position-keyed lookup map for the model's voxels.
func (m *Model) Index() map[[3]uint8]Voxel {
	idx := make(map[[3]uint8]Voxel, len(m.Voxels))
	for _, v := range m.Voxels {
		idx[[3]uint8{v.X, v.Y, v.Z}] = v
	}
	return idx
}
