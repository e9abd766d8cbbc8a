package skin

import "github.com/amcore/slmsupport/types"

// planarMesh is a minimal 2D triangle soup, used only to drive the
// skin's midpoint-subdivision pass — the triMesh-producing triangulator
// returns its own mesh.Mesh, but subdividing it in place would require
// rebuilding its half-edge bookkeeping for no benefit here.
type planarMesh struct {
	Verts []types.Point
	Tris  [][3]int
}

// triMesh is the read-only view of a 2D triangulation (mesh.Mesh
// satisfies it) that newPlanarMesh copies from.
type triMesh interface {
	GetVertices() []types.Point
	GetTriangles() []types.Triangle
}

func newPlanarMesh(m triMesh) planarMesh {
	verts := append([]types.Point(nil), m.GetVertices()...)
	srcTris := m.GetTriangles()
	tris := make([][3]int, len(srcTris))
	for i, t := range srcTris {
		tris[i] = [3]int{int(t[0]), int(t[1]), int(t[2])}
	}
	return planarMesh{Verts: verts, Tris: tris}
}

// subdivide performs one pass of midpoint subdivision: every triangle is
// split into four by its edge midpoints, with midpoints shared between
// adjacent triangles via edgeKey deduplication.
func (pm planarMesh) subdivide() planarMesh {
	type edgeKey struct{ a, b int }
	normKey := func(a, b int) edgeKey {
		if a > b {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	mid := make(map[edgeKey]int)
	verts := append([]types.Point(nil), pm.Verts...)

	midpoint := func(a, b int) int {
		k := normKey(a, b)
		if id, ok := mid[k]; ok {
			return id
		}
		pa, pb := pm.Verts[a], pm.Verts[b]
		id := len(verts)
		verts = append(verts, types.Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2})
		mid[k] = id
		return id
	}

	var tris [][3]int
	for _, t := range pm.Tris {
		ab := midpoint(t[0], t[1])
		bc := midpoint(t[1], t[2])
		ca := midpoint(t[2], t[0])
		tris = append(tris,
			[3]int{t[0], ab, ca},
			[3]int{ab, t[1], bc},
			[3]int{ca, bc, t[2]},
			[3]int{ab, bc, ca},
		)
	}
	return planarMesh{Verts: verts, Tris: tris}
}

func (pm planarMesh) subdivideN(iterations int) planarMesh {
	out := pm
	for i := 0; i < iterations; i++ {
		out = out.subdivide()
	}
	return out
}
