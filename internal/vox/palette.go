package vox

// defaultPalette builds the palette used when a file carries no RGBA
// chunk: the 6x6x6 color cube MagicaVoxel defaults to, followed by
// per-channel and grayscale ramps over the values the cube skips.
func defaultPalette() [256]Color {
	var p [256]Color
	p[0] = Color{} // transparent

	// 216 cube entries; blue varies fastest, then green, then red.
	for i := 0; i < 216; i++ {
		p[i+1] = Color{
			R: uint8(255 - ((i / 36) % 6 * 51)),
			G: uint8(255 - ((i / 6) % 6 * 51)),
			B: uint8(255 - (i % 6 * 51)),
			A: 255,
		}
	}

	ramp := []uint8{238, 221, 187, 170, 136, 119, 85, 68, 34, 17}
	idx := 217
	for _, v := range ramp {
		p[idx] = Color{R: v, A: 255}
		idx++
	}
	for _, v := range ramp {
		p[idx] = Color{G: v, A: 255}
		idx++
	}
	for _, v := range ramp {
		p[idx] = Color{B: v, A: 255}
		idx++
	}
	for _, v := range ramp[:9] {
		p[idx] = Color{R: v, G: v, B: v, A: 255}
		idx++
	}
	return p
}
