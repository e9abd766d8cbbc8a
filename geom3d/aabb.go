package geom3d

// AABB3 is an axis-aligned bounding box in 3D, inclusive on all sides.
//
// Mirrors types.AABB for the 2D case; kept as a distinct type because the
// two packages intentionally share no dependency in either direction.
type AABB3 struct {
	Min, Max Vec3
}

// Empty3 returns an inverted (empty) bounding box suitable as an
// accumulator seed for Expand.
func Empty3() AABB3 {
	inf := 1e300
	return AABB3{
		Min: Vec3{X: inf, Y: inf, Z: inf},
		Max: Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Expand grows the box, if necessary, to contain p.
func (b AABB3) Expand(p Vec3) AABB3 {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b AABB3) Union(o AABB3) AABB3 {
	return b.Expand(o.Min).Expand(o.Max)
}

// Valid reports whether the box is non-inverted.
func (b AABB3) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Intersects reports whether b and o overlap (touching counts as overlap).
func (b AABB3) Intersects(o AABB3) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Center returns the midpoint of the box.
func (b AABB3) Center() Vec3 {
	return Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Size returns the box's extent along each axis.
func (b AABB3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}
