package geom3d

import "gonum.org/v1/gonum/mat"

// Transform is a 3x4 affine transform (rotation/scale in the 3x3 block,
// translation in the last column), the representation attached to each
// returned section so callers can map 2D section-local coordinates back
// to world space.
//
// Backed by gonum's mat.Dense so Invert can reuse a battle-tested linear
// solve instead of a hand-rolled 3x3 cofactor inverse.
type Transform struct {
	m *mat.Dense // 4x4 homogeneous, row-major via gonum
}

// Identity returns the identity transform.
func Identity() Transform {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		d.Set(i, i, 1)
	}
	return Transform{m: d}
}

// NewTransform builds a transform from an origin point and an orthonormal
// basis (xAxis, yAxis, zAxis), the plane-section-to-world mapping used by
// SectionMultiplane: (x,y,0) in section-local space maps to
// origin + x*xAxis + y*yAxis.
func NewTransform(origin, xAxis, yAxis, zAxis Vec3) Transform {
	d := mat.NewDense(4, 4, nil)
	cols := [3]Vec3{xAxis, yAxis, zAxis}
	for col := 0; col < 3; col++ {
		d.Set(0, col, cols[col].X)
		d.Set(1, col, cols[col].Y)
		d.Set(2, col, cols[col].Z)
	}
	d.Set(0, 3, origin.X)
	d.Set(1, 3, origin.Y)
	d.Set(2, 3, origin.Z)
	d.Set(3, 3, 1)
	return Transform{m: d}
}

// Apply maps a local-space point to world space.
func (t Transform) Apply(p Vec3) Vec3 {
	v := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(t.m, v)
	return Vec3{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// Inverse returns the inverse transform, mapping world space back to
// local space. Panics only if the transform is singular, which would
// indicate a malformed basis upstream (a programming error, not
// recoverable input data).
func (t Transform) Inverse() Transform {
	var inv mat.Dense
	if err := inv.Inverse(t.m); err != nil {
		panic("geom3d: transform is singular: " + err.Error())
	}
	return Transform{m: &inv}
}

// Translation extracts the transform's translation component.
func (t Transform) Translation() Vec3 {
	return Vec3{X: t.m.At(0, 3), Y: t.m.At(1, 3), Z: t.m.At(2, 3)}
}
