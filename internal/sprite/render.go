package sprite

import (
	"image"
	"image/color"

	"github.com/voxtools/spriterig/internal/vox"
)

// Render draws the model as an oblique sprite. The canvas is sized
// (sx+sz, sy+sz) so the sheared depth axis fits; slices are painted
// bottom-up so nearer voxels overwrite farther ones. A voxel at
// (x, y, z) lands at (x + z'/2, y' + z'/2) with the y and z axes
// flipped into image orientation.
func Render(model *vox.Model, palette *[256]vox.Color) *image.NRGBA {
	sx, sy, sz := model.SizeX, model.SizeY, model.SizeZ
	canvas := image.NewNRGBA(image.Rect(0, 0, int(sx+sz), int(sy+sz)))

	idx := model.Index()
	for z := uint32(0); z < sz; z++ {
		for y := uint32(0); y < sy; y++ {
			for x := uint32(0); x < sx; x++ {
				voxel, ok := idx[[3]uint8{uint8(x), uint8(y), uint8(z)}]
				if !ok {
					continue
				}
				c := palette[voxel.I]

				fy := sy - y - 1
				fz := sz - z - 1
				px := x + fz/2
				py := fy + fz/2
				canvas.SetNRGBA(int(px), int(py), color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
			}
		}
	}
	return canvas
}

// RenderFused renders the model with view fusion: a voxel whose
// centered lattice position carries a view match takes the first
// match's color instead of its palette color.
func RenderFused(model *vox.Model, palette *[256]vox.Color, views []*Prism, extent int) *image.NRGBA {
	matched := BuildModel(views, extent)

	sx, sy, sz := model.SizeX, model.SizeY, model.SizeZ
	canvas := image.NewNRGBA(image.Rect(0, 0, int(sx+sz), int(sy+sz)))

	idx := model.Index()
	for z := uint32(0); z < sz; z++ {
		for y := uint32(0); y < sy; y++ {
			for x := uint32(0); x < sx; x++ {
				voxel, ok := idx[[3]uint8{uint8(x), uint8(y), uint8(z)}]
				if !ok {
					continue
				}

				pc := palette[voxel.I]
				c := color.NRGBA{R: pc.R, G: pc.G, B: pc.B, A: 255}

				// Lattice positions are centered on the model.
				pos := [3]int{
					int(x) - int(sx)/2,
					int(y) - int(sy)/2,
					int(z) - int(sz)/2,
				}
				if matches, ok := matched[pos]; ok {
					c = matches[0].Color
					c.A = 255
				}

				fy := sy - y - 1
				fz := sz - z - 1
				px := x + fz/2
				py := fy + fz/2
				canvas.SetNRGBA(int(px), int(py), c)
			}
		}
	}
	return canvas
}
