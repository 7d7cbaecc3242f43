package sprite

import "image/color"

// Prism is a reference view image placed behind an oblique camera. It
// answers whether a world position projects onto a filled pixel of the
// view.
type Prism struct {
	Image  *FocusImage
	Camera Mat4
}

// NewPrism pairs a focus image with a camera viewpoint.
func NewPrism(img *FocusImage, cam Camera) *Prism {
	return &Prism{Image: img, Camera: cam.Matrix()}
}

// Sample projects pos through the camera and samples the view.
func (p *Prism) Sample(pos Vec3) (color.NRGBA, bool) {
	return p.Image.Sample(p.Camera.TransformPoint3(pos))
}

// Normal returns the view direction in world space.
func (p *Prism) Normal() Vec3 {
	return p.Camera.TransformVector3(Vec3{Z: 1})
}
