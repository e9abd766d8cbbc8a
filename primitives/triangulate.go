package primitives

import (
	"fmt"

	"github.com/amcore/slmsupport/cdt"
	"github.com/amcore/slmsupport/mesh"
	"github.com/amcore/slmsupport/types"
)

// TriangulatePolygon triangulates poly via the constrained Delaunay
// builder, then splits any triangle whose area exceeds maxArea by
// inserting its centroid — a simple quality pass since cdt.Build has
// no area constraint of its own. maxArea <= 0 disables the quality pass.
func TriangulatePolygon(poly types.Polygon, maxArea float64) (*mesh.Mesh, error) {
	holes := make([][]types.Point, len(poly.Holes))
	for i, h := range poly.Holes {
		holes[i] = h
	}

	m, err := cdt.BuildSimple(poly.Outer, holes)
	if err != nil {
		return nil, fmt.Errorf("primitives: triangulate: %w", err)
	}
	if maxArea <= 0 {
		return m, nil
	}
	return refineByArea(m, maxArea)
}

// refineByArea repeatedly centroid-splits triangles above maxArea until
// none remain or a safety bound on iterations is hit (large, thin slivers
// from badly conditioned input can't shrink below maxArea by centroid
// splitting alone; the bound just prevents those from looping forever).
func refineByArea(m *mesh.Mesh, maxArea float64) (*mesh.Mesh, error) {
	const maxPasses = 8
	for pass := 0; pass < maxPasses; pass++ {
		oversized := findOversized(m, maxArea)
		if len(oversized) == 0 {
			return m, nil
		}
		next, err := splitTriangles(m, oversized)
		if err != nil {
			return nil, fmt.Errorf("primitives: refine pass %d: %w", pass, err)
		}
		m = next
	}
	return m, nil
}

func findOversized(m *mesh.Mesh, maxArea float64) []int {
	var out []int
	for i := 0; i < m.NumTriangles(); i++ {
		a, b, c := m.GetTriangleCoords(i)
		if triArea(a, b, c) > maxArea {
			out = append(out, i)
		}
	}
	return out
}

func triArea(a, b, c types.Point) float64 {
	return absF((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

// splitTriangles rebuilds a mesh with each triangle in indices replaced
// by three triangles fanned around its centroid, everything else copied
// unchanged.
func splitTriangles(m *mesh.Mesh, indices []int) (*mesh.Mesh, error) {
	split := make(map[int]bool, len(indices))
	for _, i := range indices {
		split[i] = true
	}

	verts := m.GetVertices()
	out := mesh.NewMesh(mesh.WithMergeVertices(false), mesh.WithOverlapTriangle(true))
	vid := make([]types.VertexID, len(verts))
	for i, p := range verts {
		id, err := out.AddVertex(p)
		if err != nil {
			return nil, err
		}
		vid[i] = id
	}

	tris := m.GetTriangles()
	for i, t := range tris {
		a, b, c := t[0], t[1], t[2]
		if !split[i] {
			if err := out.AddTriangle(vid[a], vid[b], vid[c]); err != nil {
				return nil, err
			}
			continue
		}
		pa, pb, pc := verts[a], verts[b], verts[c]
		centroid := types.Point{X: (pa.X + pb.X + pc.X) / 3, Y: (pa.Y + pb.Y + pc.Y) / 3}
		cid, err := out.AddVertex(centroid)
		if err != nil {
			return nil, err
		}
		if err := out.AddTriangle(vid[a], vid[b], cid); err != nil {
			return nil, err
		}
		if err := out.AddTriangle(vid[b], vid[c], cid); err != nil {
			return nil, err
		}
		if err := out.AddTriangle(vid[c], vid[a], cid); err != nil {
			return nil, err
		}
	}
	return out, nil
}
