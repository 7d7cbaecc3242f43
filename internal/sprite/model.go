package sprite

import "image/color"

// DefaultLatticeExtent bounds the scanned lattice at [-N, N] per axis.
const DefaultLatticeExtent = 16

// VoxelMatch records one view agreeing on a lattice position.
type VoxelMatch struct {
	Color  color.NRGBA
	Normal Vec3
}

// BuildModel scans the centered cubic lattice and collects, per
// position, a match from every view whose image covers it. Positions
// no view covers are absent from the result.
func BuildModel(views []*Prism, extent int) map[[3]int][]VoxelMatch {
	if extent <= 0 {
		extent = DefaultLatticeExtent
	}

	ret := make(map[[3]int][]VoxelMatch)
	for z := -extent; z <= extent; z++ {
		for y := -extent; y <= extent; y++ {
			for x := -extent; x <= extent; x++ {
				pos := Vec3{X: float64(x), Y: float64(y), Z: float64(z)}

				var matches []VoxelMatch
				for _, view := range views {
					c, ok := view.Sample(pos)
					if !ok {
						continue
					}
					matches = append(matches, VoxelMatch{
						Color:  c,
						Normal: view.Normal(),
					})
				}

				if len(matches) > 0 {
					ret[[3]int{x, y, z}] = matches
				}
			}
		}
	}
	return ret
}
