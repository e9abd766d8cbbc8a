// Package geom3d provides the 3D mesh primitives the support-generation
// core is built on: Part (the input/output triangle mesh), vector algebra,
// bounding boxes, affine transforms, and ray casting. It plays the 3D
// counterpart to the 2D types package: small, dependency-light value
// types other packages build on.
package geom3d

import "math"

// Vec3 is a position or direction in R^3.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns v-u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Cross returns the cross product v x u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns a unit-length copy of v, or the zero vector if v is
// degenerate (length below 1e-15).
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-15 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// AngleTo returns the unsigned angle between v and u, in radians.
func (v Vec3) AngleTo(u Vec3) float64 {
	vn, un := v.Normalize(), u.Normalize()
	c := vn.Dot(un)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// UnitZ is the up direction the pipeline treats as "build direction."
var UnitZ = Vec3{Z: 1}

// XY projects v onto the Z=0 plane, discarding its Z coordinate.
func (v Vec3) XY() (float64, float64) { return v.X, v.Y }

// Lerp linearly interpolates between v and u at parameter t in [0,1].
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (u.X-v.X)*t,
		Y: v.Y + (u.Y-v.Y)*t,
		Z: v.Z + (u.Z-v.Z)*t,
	}
}
