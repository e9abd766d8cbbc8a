package skin

import (
	"fmt"
	"math"

	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/spatial"
	"github.com/amcore/slmsupport/types"
)

// wallSnapTolerance is the "3-digit" (0.001mm) vertex-merge distance
// boundary-curve extraction applies before walking boundary loops, so
// coincident-but-unmerged vertices at a CSG seam don't break the
// degree-2 assumption geom3d.BoundaryLoops relies on.
const wallSnapTolerance = 1e-3

// extractWallLoops isolates vol's vertical-wall faces, merges
// near-duplicate vertices, and returns its boundary loops split into
// "top" and "bottom" by Z relative to the wall's own bounding box —
// Returns ErrSkinTopologyAnomaly if isolation yields no usable wall
// surface or the boundary doesn't resolve into at least one of each.
func extractWallLoops(vol *geom3d.Part, sideAngle float64) (top, bottom [][]geom3d.Vec3, err error) {
	components := isolateVerticalWalls(vol, sideAngle)
	if len(components) == 0 {
		return nil, nil, ErrSkinTopologyAnomaly
	}

	var allFaces []int
	for _, c := range components {
		allFaces = append(allFaces, c...)
	}
	wallPart := extractFaces(vol, allFaces)
	snapped := snapVertices(wallPart, wallSnapTolerance)

	loops, err := geom3d.BoundaryLoops(snapped)
	if err != nil || len(loops) == 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrSkinTopologyAnomaly, err)
	}

	bbox := snapped.BBox()
	midZ := (bbox.Min.Z + bbox.Max.Z) / 2
	for _, loop := range loops {
		pts := make([]geom3d.Vec3, len(loop))
		avgZ := 0.0
		for i, vi := range loop {
			pts[i] = snapped.Vertices[vi]
			avgZ += pts[i].Z
		}
		avgZ /= float64(len(loop))
		if avgZ > midZ {
			top = append(top, pts)
		} else {
			bottom = append(bottom, pts)
		}
	}
	if len(top) == 0 || len(bottom) == 0 {
		return nil, nil, ErrSkinTopologyAnomaly
	}
	return top, bottom, nil
}

// snapVertices merges vol's vertices within tol of each other — bucketed
// by XY via spatial.HashGrid (repurposed here for merge-distance
// deduplication rather than its usual nearest-neighbor mesh-insertion
// role) and confirmed by an exact 3D distance check, since HashGrid
// itself only indexes two dimensions.
func snapVertices(vol *geom3d.Part, tol float64) *geom3d.Part {
	grid := spatial.NewHashGrid(tol * 4)
	merged := make([]geom3d.Vec3, 0, len(vol.Vertices))
	remap := make([]int, len(vol.Vertices))

	for i, v := range vol.Vertices {
		pt := types.Point{X: v.X, Y: v.Y}
		found := -1
		for _, cid := range grid.FindVerticesNear(pt, tol) {
			j := int(cid)
			mv := merged[j]
			if math.Abs(mv.Z-v.Z) <= tol && math.Hypot(mv.X-v.X, mv.Y-v.Y) <= tol {
				found = j
				break
			}
		}
		if found >= 0 {
			remap[i] = found
			continue
		}
		id := len(merged)
		merged = append(merged, v)
		grid.AddVertex(types.VertexID(id), pt)
		remap[i] = id
	}

	faces := make([]geom3d.Face, len(vol.Faces))
	for i, f := range vol.Faces {
		faces[i] = geom3d.Face{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	return geom3d.NewPart(merged, faces)
}
