// Package sprite renders oblique-projected sprites from voxel models
// and reference view images.
package sprite

import "math"

// Vec3 is a 3-component float vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a 4-component float vector, used as a matrix column.
type Vec4 struct {
	X, Y, Z, W float64
}

// Mat4 is a column-major 4x4 transform matrix.
type Mat4 struct {
	XAxis, YAxis, ZAxis, WAxis Vec4
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		XAxis: Vec4{X: 1},
		YAxis: Vec4{Y: 1},
		ZAxis: Vec4{Z: 1},
		WAxis: Vec4{W: 1},
	}
}

// RotationZ returns a rotation of angle radians about the Z axis.
func RotationZ(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	m := Identity()
	m.XAxis = Vec4{X: cos, Y: sin}
	m.YAxis = Vec4{X: -sin, Y: cos}
	return m
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	mulCol := func(c Vec4) Vec4 {
		return Vec4{
			X: m.XAxis.X*c.X + m.YAxis.X*c.Y + m.ZAxis.X*c.Z + m.WAxis.X*c.W,
			Y: m.XAxis.Y*c.X + m.YAxis.Y*c.Y + m.ZAxis.Y*c.Z + m.WAxis.Y*c.W,
			Z: m.XAxis.Z*c.X + m.YAxis.Z*c.Y + m.ZAxis.Z*c.Z + m.WAxis.Z*c.W,
			W: m.XAxis.W*c.X + m.YAxis.W*c.Y + m.ZAxis.W*c.Z + m.WAxis.W*c.W,
		}
	}
	return Mat4{
		XAxis: mulCol(n.XAxis),
		YAxis: mulCol(n.YAxis),
		ZAxis: mulCol(n.ZAxis),
		WAxis: mulCol(n.WAxis),
	}
}

// TransformPoint3 applies the affine transform to a point.
func (m Mat4) TransformPoint3(v Vec3) Vec3 {
	return Vec3{
		X: m.XAxis.X*v.X + m.YAxis.X*v.Y + m.ZAxis.X*v.Z + m.WAxis.X,
		Y: m.XAxis.Y*v.X + m.YAxis.Y*v.Y + m.ZAxis.Y*v.Z + m.WAxis.Y,
		Z: m.XAxis.Z*v.X + m.YAxis.Z*v.Y + m.ZAxis.Z*v.Z + m.WAxis.Z,
	}
}

// TransformVector3 applies the transform to a direction, ignoring translation.
func (m Mat4) TransformVector3(v Vec3) Vec3 {
	return Vec3{
		X: m.XAxis.X*v.X + m.YAxis.X*v.Y + m.ZAxis.X*v.Z,
		Y: m.XAxis.Y*v.X + m.YAxis.Y*v.Y + m.ZAxis.Y*v.Z,
		Z: m.XAxis.Z*v.X + m.YAxis.Z*v.Y + m.ZAxis.Z*v.Z,
	}
}

// Camera is one of the fixed oblique viewpoints.
type Camera int

const (
	ObliqueNorth Camera = iota
	ObliqueWest
	ObliqueSouth
	ObliqueEast
)

const (
	turn = math.Pi / 4
	// Oblique unit: depth recedes half a diagonal step per cell.
	oblique = 1 / math.Sqrt2
)

// Matrix returns the camera transform: a facing rotation about Z
// followed by the oblique shear on the depth axis.
func (c Camera) Matrix() Mat4 {
	m := Identity()
	switch c {
	case ObliqueNorth:
	case ObliqueWest:
		m = m.Mul(RotationZ(turn))
	case ObliqueSouth:
		m = m.Mul(RotationZ(2 * turn))
	case ObliqueEast:
		m = m.Mul(RotationZ(3 * turn))
	}
	m.ZAxis.X = -oblique
	m.ZAxis.Y = oblique
	return m
}
