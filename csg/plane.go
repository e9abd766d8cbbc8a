// Package csg implements the native triangle-mesh Boolean backend behind
// primitives.CSGBackend: intersect, difference, and a self-intersection
// repair pass. No available library performs 3D mesh CSG (the rest of
// this module's geometry tooling is 2D polygon/mesh), so this is a
// from-scratch BSP-tree implementation in the classic plane-splitting
// style, using the same epsilon-tolerant "on/front/back/spanning"
// classification idiom the 2D predicates package uses for segment-vs-
// segment classification.
package csg

import "github.com/amcore/slmsupport/geom3d"

const planeEpsilon = 1e-9

// plane is the half-space boundary normal*X = w.
type plane struct {
	normal geom3d.Vec3
	w      float64
}

func planeFromPoints(a, b, c geom3d.Vec3) (plane, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() < 1e-12 {
		return plane{}, false
	}
	n = n.Normalize()
	return plane{normal: n, w: n.Dot(a)}, true
}

func (pl plane) flip() plane {
	return plane{normal: pl.normal.Scale(-1), w: -pl.w}
}

func (pl plane) distance(p geom3d.Vec3) float64 {
	return pl.normal.Dot(p) - pl.w
}

const (
	coplanar = 0
	front    = 1
	back     = 2
	spanning = 3
)

// classifyPolygon buckets a polygon against pl, returning the OR of each
// vertex's classification.
func (pl plane) classifyPolygon(poly *polygon) int {
	kind := coplanar
	types := make([]int, len(poly.verts))
	for i, v := range poly.verts {
		t := pl.distance(v.pos)
		var c int
		switch {
		case t < -planeEpsilon:
			c = back
		case t > planeEpsilon:
			c = front
		default:
			c = coplanar
		}
		types[i] = c
		kind |= c
	}
	return kind
}

// splitPolygon partitions poly by pl into up to four output lists
// (coplanar-front, coplanar-back, front, back), following the standard
// BSP polygon-clipping algorithm: edges that cross the plane are cut and
// a new vertex is inserted by linear interpolation.
func (pl plane) splitPolygon(poly *polygon, coplanarFront, coplanarBack, frontOut, backOut *[]*polygon) {
	types := make([]int, len(poly.verts))
	kind := coplanar
	for i, v := range poly.verts {
		t := pl.distance(v.pos)
		var c int
		switch {
		case t < -planeEpsilon:
			c = back
		case t > planeEpsilon:
			c = front
		default:
			c = coplanar
		}
		types[i] = c
		kind |= c
	}

	switch kind {
	case coplanar:
		if pl.normal.Dot(poly.plane.normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case front:
		*frontOut = append(*frontOut, poly)
	case back:
		*backOut = append(*backOut, poly)
	case spanning:
		var f, b []vertex
		n := len(poly.verts)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.verts[i], poly.verts[j]
			if ti != back {
				f = append(f, vi)
			}
			if ti != front {
				if ti != back {
					b = append(b, vi.clone())
				} else {
					b = append(b, vi)
				}
			}
			if (ti | tj) == spanning {
				t := pl.distance(vi.pos) / (pl.distance(vi.pos) - pl.distance(vj.pos))
				nv := vi.lerp(vj, t)
				f = append(f, nv)
				b = append(b, nv.clone())
			}
		}
		if len(f) >= 3 {
			*frontOut = append(*frontOut, newPolygon(f))
		}
		if len(b) >= 3 {
			*backOut = append(*backOut, newPolygon(b))
		}
	}
}
