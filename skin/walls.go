// Package skin implements component E: pairing a BlockSupport's upper
// and lower vertical-wall boundary curves, unrolling them into a 2D
// (arc-length, z) strip, and filling that strip with the same
// tooth/truss pattern the truss package generates per slice.
package skin

import (
	"errors"
	"math"

	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/internal/unionfind"
)

// minWallArea is the per-component area filter applied after isolating
// vertical-wall faces, rejecting slivers left over from the sin(n,ẑ)
// threshold.
const minWallArea = 5.0

// isolateVerticalWalls implements step 1: keep faces whose normal is
// near-vertical — sin of the angle to ẑ at or above sideAngle, i.e.
// sqrt(1-n.Z²) >= sideAngle for unit n — and whose area exceeds a
// degenerate-triangle floor, then cluster them into connected components
// by shared edges and keep only components whose total area exceeds
// minWallArea.
func isolateVerticalWalls(p *geom3d.Part, sideAngle float64) [][]int {
	var candidates []int
	for fi, n := range p.FaceNormal {
		sinToZ := math.Sqrt(math.Max(0, 1-n.Z*n.Z))
		if sinToZ < sideAngle {
			continue
		}
		if p.FaceArea(fi) <= 1e-6 {
			continue
		}
		candidates = append(candidates, fi)
	}
	if len(candidates) == 0 {
		return nil
	}

	adj := faceAdjacency(p)
	isCandidate := make(map[int]bool, len(candidates))
	for _, fi := range candidates {
		isCandidate[fi] = true
	}

	uf := unionfind.New(len(p.Faces))
	for _, fi := range candidates {
		for _, nb := range adj[fi] {
			if isCandidate[nb] {
				uf.Union(fi, nb)
			}
		}
	}

	groups := make(map[int][]int)
	var order []int
	for _, fi := range candidates {
		r := uf.Find(fi)
		if _, ok := groups[r]; !ok {
			order = append(order, r)
		}
		groups[r] = append(groups[r], fi)
	}

	var out [][]int
	for _, r := range order {
		faces := groups[r]
		area := 0.0
		for _, fi := range faces {
			area += p.FaceArea(fi)
		}
		if area > minWallArea {
			out = append(out, faces)
		}
	}
	return out
}

// faceAdjacency builds p's face adjacency graph over shared edges (two
// faces sharing an undirected edge are adjacent) — identical in shape to
// overhang's, duplicated here rather than exported cross-package since
// the two packages otherwise share no dependency.
func faceAdjacency(p *geom3d.Part) [][]int {
	type edgeKey struct{ a, b int }
	edgeFaces := make(map[edgeKey][]int)
	for fi, f := range p.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			k := edgeKey{a, b}
			edgeFaces[k] = append(edgeFaces[k], fi)
		}
	}
	adj := make([][]int, len(p.Faces))
	for _, faces := range edgeFaces {
		if len(faces) != 2 {
			continue
		}
		adj[faces[0]] = append(adj[faces[0]], faces[1])
		adj[faces[1]] = append(adj[faces[1]], faces[0])
	}
	return adj
}

// extractFaces builds a new, disjoint Part from a subset of p's faces.
func extractFaces(p *geom3d.Part, idx []int) *geom3d.Part {
	remap := make(map[int]int)
	var verts []geom3d.Vec3
	faces := make([]geom3d.Face, 0, len(idx))
	for _, fi := range idx {
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

// ErrSkinTopologyAnomaly signals that wall isolation kept no component,
// or that the wall's boundary did not resolve into at least one top and
// one bottom loop. GenerateSkin then returns no skin for the block and
// no error, so the caller keeps the block's truss.
var ErrSkinTopologyAnomaly = errors.New("skin: wall boundary did not resolve into top and bottom loops")
