package geom3d

import "math"

// EdgeRef identifies an edge of a Part by its two incident faces and
// endpoint vertex indices, the unit component C and the skin generator
// isolate and classify.
type EdgeRef struct {
	V1, V2     int
	FaceA      int
	FaceB      int // -1 if boundary (only one incident face)
}

// RayHit is the result of casting a ray against a Part.
type RayHit struct {
	Z    float64
	Face int
	Hit  bool
}

// CastZ casts a vertical ray from (x,y) in direction dir (+1 for +Z, -1
// for -Z) against p, returning the nearest hit's Z coordinate.
//
// This backs both the overhang-patch "first hit casting +Z" and the
// cutMeshUpper "last hit casting +Z" (equivalently first hit casting -Z)
// queries a depth-map construction step needs: pass dir=+1
// and take the minimum Z (first hit) for upperImg, or dir=-1 from above
// and take the maximum Z (last hit going up, i.e. nearest from above) for
// lowerImg.
func CastZ(p *Part, x, y float64, dir float64) RayHit {
	best := RayHit{}
	bestDist := math.Inf(1)
	for fi, f := range p.Faces {
		a, b, c := p.Vertices[f[0]], p.Vertices[f[1]], p.Vertices[f[2]]
		z, ok := rayTriangleZ(x, y, a, b, c)
		if !ok {
			continue
		}
		// dir selects which extreme hit to report when the caller wants
		// "first" vs "last" along +Z: dir>0 wants the minimum Z (first
		// hit travelling up from -inf), dir<0 wants the maximum Z
		// (first hit travelling down from +inf).
		var dist float64
		if dir >= 0 {
			dist = z
		} else {
			dist = -z
		}
		if dist < bestDist {
			bestDist = dist
			best = RayHit{Z: z, Face: fi, Hit: true}
		}
	}
	return best
}

// rayTriangleZ intersects the vertical line (x,y,*) with the plane of
// triangle (a,b,c) and reports the Z of intersection if (x,y) projects
// inside the triangle.
func rayTriangleZ(x, y float64, a, b, c Vec3) (float64, bool) {
	// Barycentric coordinates in the XY projection.
	d00 := (b.X - a.X) * (c.Y - a.Y)
	d01 := (c.X - a.X) * (b.Y - a.Y)
	denom := d00 - d01
	if math.Abs(denom) < 1e-15 {
		return 0, false
	}

	v0x, v0y := c.X-a.X, c.Y-a.Y
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := x-a.X, y-a.Y

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	invDenom := 1 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	const eps = -1e-9
	if u < eps || v < eps || u+v > 1-eps {
		return 0, false
	}

	w := 1 - u - v
	z := w*a.Z + v*b.Z + u*c.Z
	return z, true
}

// BoundaryEdges returns every edge used by exactly one face (FaceB=-1);
// edges shared by two or more faces are omitted. It is the building block
// for boundary-loop extraction (FlattenSupportRegion, skin outline
// extraction).
func BoundaryEdges(p *Part) []EdgeRef {
	type key struct{ a, b int }
	type rec struct {
		faces  []int
		v1, v2 int
	}
	index := make(map[key]*rec)
	for fi, f := range p.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			k := key{a, b}
			rk := k
			if a > b {
				rk = key{b, a}
			}
			r, ok := index[rk]
			if !ok {
				r = &rec{v1: a, v2: b}
				index[rk] = r
			}
			r.faces = append(r.faces, fi)
		}
	}

	out := make([]EdgeRef, 0, len(index))
	for _, r := range index {
		if len(r.faces) == 1 {
			out = append(out, EdgeRef{V1: r.v1, V2: r.v2, FaceA: r.faces[0], FaceB: -1})
		}
	}
	return out
}
