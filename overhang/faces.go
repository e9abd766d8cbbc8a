package overhang

import (
	"math"

	"github.com/amcore/slmsupport/geom3d"
)

// faceAdjacency returns, for each face, the indices of faces sharing an
// edge with it.
func faceAdjacency(p *geom3d.Part) [][]int {
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

	adj := make([][]int, len(p.Faces))
	for _, fs := range edgeFaces {
		if len(fs) < 2 {
			continue
		}
		for i := 0; i < len(fs); i++ {
			for j := 0; j < len(fs); j++ {
				if i == j {
					continue
				}
				adj[fs[i]] = append(adj[fs[i]], fs[j])
			}
		}
	}
	return adj
}

// dihedralAngle returns the angle in degrees between the face normals of
// fa and fb.
func dihedralAngle(p *geom3d.Part, fa, fb int) float64 {
	return p.FaceNormal[fa].AngleTo(p.FaceNormal[fb]) * 180 / math.Pi
}
