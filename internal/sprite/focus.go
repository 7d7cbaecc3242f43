package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// Error definitions for focus image construction.
var (
	ErrImageTooSmall = errors.New("focus image must be at least 2x2")
	ErrNoFocusX      = errors.New("no unique x-focus pixel found")
	ErrNoFocusY      = errors.New("no unique y-focus pixel found")
)

// FocusImage is a reference view with an embedded center point. The
// source must have its x=0 and y=0 lines fully set to the key color
// (the pixel at the origin) except for a single marker pixel on each;
// the marker positions define the center. The marker lines are cut off
// and key-colored pixels become transparent.
type FocusImage struct {
	img    *image.NRGBA
	center image.Point
}

// NewFocusImage constructs a FocusImage from a decoded view image.
func NewFocusImage(src image.Image) (*FocusImage, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 2 || h < 2 {
		return nil, ErrImageTooSmall
	}

	at := func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
	}
	key := at(0, 0)

	focusX, err := uniqueMarker(w, func(x int) color.NRGBA { return at(x, 0) }, key, ErrNoFocusX)
	if err != nil {
		return nil, err
	}
	focusY, err := uniqueMarker(h, func(y int) color.NRGBA { return at(0, y) }, key, ErrNoFocusY)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, w-1, h-1))
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			p := at(x+1, y+1)
			if p == key {
				p = color.NRGBA{}
			}
			img.SetNRGBA(x, y, p)
		}
	}

	return &FocusImage{img: img, center: image.Pt(focusX, focusY)}, nil
}

// uniqueMarker finds the single index whose pixel differs from the key.
func uniqueMarker(n int, at func(int) color.NRGBA, key color.NRGBA, missing error) (int, error) {
	found := -1
	for i := 0; i < n; i++ {
		if at(i) == key {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("%w: markers at %d and %d", missing, found, i)
		}
		found = i
	}
	if found < 0 {
		return 0, missing
	}
	return found, nil
}

// Center returns the focus center extracted from the marker lines.
func (f *FocusImage) Center() image.Point {
	return f.center
}

// Sample returns the pixel at the projected position, offset by the
// focus center. Transparent pixels and out-of-bounds positions report
// no hit.
func (f *FocusImage) Sample(uv Vec3) (color.NRGBA, bool) {
	x := int(math.Round(uv.X)) + f.center.X
	y := int(math.Round(uv.Y)) + f.center.Y
	if x <= 0 || y <= 0 || x >= f.img.Rect.Dx() || y >= f.img.Rect.Dy() {
		return color.NRGBA{}, false
	}
	p := f.img.NRGBAAt(x, y)
	if p == (color.NRGBA{}) {
		return color.NRGBA{}, false
	}
	return p, true
}
