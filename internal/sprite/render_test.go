package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxtools/spriterig/internal/vox"
)

func testPalette() *[256]vox.Color {
	var p [256]vox.Color
	p[1] = vox.Color{R: 10, G: 20, B: 30, A: 255}
	p[2] = vox.Color{R: 200, G: 100, B: 50, A: 255}
	return &p
}

func TestRenderSingleVoxel(t *testing.T) {
	model := &vox.Model{
		SizeX: 1, SizeY: 1, SizeZ: 1,
		Voxels: []vox.Voxel{{I: 1}},
	}

	img := Render(model, testPalette())

	// Canvas is (sx+sz, sy+sz).
	assert.Equal(t, 2, img.Rect.Dx())
	assert.Equal(t, 2, img.Rect.Dy())

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(1, 1))
}

func TestRenderFlipsAxesIntoImageOrientation(t *testing.T) {
	// Two voxels in a 1x2x2 column; (0,0,0) is the bottom-front cell
	// and must land lower on the canvas than (0,1,1).
	model := &vox.Model{
		SizeX: 1, SizeY: 2, SizeZ: 2,
		Voxels: []vox.Voxel{
			{X: 0, Y: 0, Z: 0, I: 1},
			{X: 0, Y: 1, Z: 1, I: 2},
		},
	}

	img := Render(model, testPalette())
	require.Equal(t, 3, img.Rect.Dx())
	require.Equal(t, 4, img.Rect.Dy())

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(0, 1))
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, img.NRGBAAt(0, 0))
}

func TestRenderNearerSlicesPaintOver(t *testing.T) {
	// Both voxels project to the same pixel; the higher z slice is
	// painted later and must win.
	model := &vox.Model{
		SizeX: 1, SizeY: 1, SizeZ: 2,
		Voxels: []vox.Voxel{
			{X: 0, Y: 0, Z: 0, I: 1},
			{X: 0, Y: 0, Z: 1, I: 2},
		},
	}

	img := Render(model, testPalette())
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, img.NRGBAAt(0, 0))
}

func TestRenderFusedRecolorsMatchedVoxels(t *testing.T) {
	// A single voxel centered on the lattice origin, with a front view
	// that covers the origin in blue.
	model := &vox.Model{
		SizeX: 1, SizeY: 1, SizeZ: 1,
		Voxels: []vox.Voxel{{I: 1}},
	}

	src := focusSource(5, 5, 2, 2, map[image.Point]color.NRGBA{
		{X: 3, Y: 3}: blue,
	})
	f, err := NewFocusImage(src)
	require.NoError(t, err)
	views := []*Prism{NewPrism(f, ObliqueNorth)}

	img := RenderFused(model, testPalette(), views, 1)
	assert.Equal(t, blue, img.NRGBAAt(0, 0))
}
