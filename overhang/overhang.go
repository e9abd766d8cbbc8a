// Package overhang classifies a Part's faces, points, and edges as
// overhanging — facing downward steeply enough to need support — and
// clusters overhang faces into connected patches.
package overhang

import (
	"fmt"
	"math"

	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/internal/unionfind"
	"github.com/amcore/slmsupport/primitives"
)

// PointOverhangTolerance is the height slack a vertex's neighbors are
// allowed before it no longer counts as a local overhang point.
const PointOverhangTolerance = 0.05

// FindOverhangSurfaces returns the connected components of faces whose
// inclination from horizontal is below angleDeg and whose normal faces
// downward (FaceNormal.Z < 0), each returned as its own Part built from
// a subset of p's faces. If split is false, all qualifying faces are
// returned as a single Part regardless of connectivity.
func FindOverhangSurfaces(p *geom3d.Part, angleDeg float64, split bool) ([]*geom3d.Part, error) {
	if p == nil {
		return nil, fmt.Errorf("overhang: nil part")
	}
	angles := primitives.SupportAngles(p)

	var qualifying []int
	for fi := range p.Faces {
		if p.FaceNormal[fi].Z >= 0 {
			continue
		}
		if angles[fi] < angleDeg {
			qualifying = append(qualifying, fi)
		}
	}
	if len(qualifying) == 0 {
		return nil, nil
	}
	if !split {
		return []*geom3d.Part{subPart(p, qualifying)}, nil
	}

	adj := faceAdjacency(p)
	qualifies := make(map[int]bool, len(qualifying))
	for _, fi := range qualifying {
		qualifies[fi] = true
	}

	uf := unionfind.New(len(p.Faces))
	for _, fi := range qualifying {
		for _, nb := range adj[fi] {
			if qualifies[nb] {
				uf.Union(fi, nb)
			}
		}
	}

	groups := make(map[int][]int)
	var order []int
	for _, fi := range qualifying {
		r := uf.Find(fi)
		if _, ok := groups[r]; !ok {
			order = append(order, r)
		}
		groups[r] = append(groups[r], fi)
	}

	out := make([]*geom3d.Part, 0, len(order))
	for _, r := range order {
		out = append(out, subPart(p, groups[r]))
	}
	return out, nil
}

// subPart builds a new, disjoint Part from a subset of p's faces,
// remapping vertex indices to a compact range.
func subPart(p *geom3d.Part, faceIdx []int) *geom3d.Part {
	remap := make(map[int]int)
	var verts []geom3d.Vec3
	faces := make([]geom3d.Face, 0, len(faceIdx))
	for _, fi := range faceIdx {
		f := p.Faces[fi]
		var nf geom3d.Face
		for i, vi := range f {
			if id, ok := remap[vi]; ok {
				nf[i] = id
			} else {
				id = len(verts)
				remap[vi] = id
				verts = append(verts, p.Vertices[vi])
				nf[i] = id
			}
		}
		faces = append(faces, nf)
	}
	return geom3d.NewPart(verts, faces)
}

// FindOverhangPoints returns the indices of vertices that are local
// overhang points: every mesh neighbor is higher (within
// PointOverhangTolerance) and the vertex normal points downward.
func FindOverhangPoints(p *geom3d.Part) []int {
	var out []int
	for vi, v := range p.Vertices {
		if p.VertNormal[vi].Z >= 0 {
			continue
		}
		isLowest := true
		for _, ni := range p.Neighbors[vi] {
			if p.Vertices[ni].Z < v.Z-PointOverhangTolerance {
				isLowest = false
				break
			}
		}
		if isLowest {
			out = append(out, vi)
		}
	}
	return out
}

// FindOverhangEdges returns edges that are themselves near-horizontal
// overhang features: the edge's own inclination is below edgeAngle, both
// incident faces exceed surfaceAngle inclination, and the dihedral angle
// between them exceeds surfaceAngle — the combination that picks out a
// sharp downward-facing "knife edge" rather than a single steep face.
func FindOverhangEdges(p *geom3d.Part, surfaceAngle, edgeAngle float64) []geom3d.EdgeRef {
	angles := primitives.SupportAngles(p)

	type edgeKey struct{ a, b int }
	norm := func(a, b int) edgeKey {
		if a > b {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	edgeFaces := make(map[edgeKey][]int)
	for fi, f := range p.Faces {
		for i := 0; i < 3; i++ {
			e := norm(f[i], f[(i+1)%3])
			edgeFaces[e] = append(edgeFaces[e], fi)
		}
	}

	var out []geom3d.EdgeRef
	for e, fs := range edgeFaces {
		if len(fs) != 2 {
			continue
		}
		fa, fb := fs[0], fs[1]
		if angles[fa] <= surfaceAngle || angles[fb] <= surfaceAngle {
			continue
		}
		if dihedralAngle(p, fa, fb) <= surfaceAngle {
			continue
		}
		edgeInclination := edgeAngleFromHorizontal(p, e.a, e.b)
		if edgeInclination >= edgeAngle {
			continue
		}
		out = append(out, geom3d.EdgeRef{V1: e.a, V2: e.b, FaceA: fa, FaceB: fb})
	}
	return out
}

func edgeAngleFromHorizontal(p *geom3d.Part, a, b int) float64 {
	dir := p.Vertices[b].Sub(p.Vertices[a])
	flat := geom3d.Vec3{X: dir.X, Y: dir.Y}
	if flat.Length() < 1e-12 {
		return 90
	}
	return dir.AngleTo(flat) * 180 / math.Pi
}
