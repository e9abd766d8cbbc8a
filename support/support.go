// Package support implements component C, the block-support extractor:
// IdentifySupportRegions turns a Part's overhang regions (component B)
// into one BlockSupport per reconstructed sub-region.
package support

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/blocksupport"
	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/corelog"
	"github.com/amcore/slmsupport/coremetrics"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/mesh"
	"github.com/amcore/slmsupport/overhang"
	"github.com/amcore/slmsupport/primitives"
	"github.com/amcore/slmsupport/types"
)

var log = corelog.For("support")

// Local-skip sentinels: the region loop logs these at Warn and
// continues to the next region rather than aborting the whole call.
var (
	ErrSubthresholdArea   = errors.New("support: region area below MinimumAreaThreshold")
	ErrCSGFailure         = errors.New("support: CSG backend call failed")
	ErrProjectionMismatch = errors.New("support: depth map projection degenerate")
)

// ErrSkinTopologyAnomaly aborts the whole call per region: it signals a
// caller bug, not a recoverable per-region condition.
var ErrSkinTopologyAnomaly = errors.New("support: skin topology anomaly")

// IdentifySupportRegions implements steps 1-8 of component C: flatten &
// simplify each overhang region, prism-project it downward, intersect
// with part, test for self-intersection, isolate the upper surface,
// build and segment a depth map, and reconstruct one BlockSupport per
// resulting sub-region. Single-threaded per call; ctx is checked between
// regions so a caller can cancel without tearing down shared state.
func IdentifySupportRegions(ctx context.Context, p *geom3d.Part, params coreconfig.Parameters, tol coreconfig.Tolerances, backend primitives.CSGBackend, rasterizer primitives.DepthRasterizer, findSelfIntersecting bool, rec *coremetrics.Recorder) ([]blocksupport.BlockSupport, error) {
	if p == nil {
		return nil, fmt.Errorf("support: nil part")
	}
	if backend == nil {
		backend = primitives.DefaultCSGBackend
	}
	if rasterizer == nil {
		rasterizer = RasterDepthMap{}
	}

	regions, err := overhang.FindOverhangSurfaces(p, params.OverhangAngle, true)
	if err != nil {
		return nil, fmt.Errorf("support: finding overhang surfaces: %w", err)
	}

	var out []blocksupport.BlockSupport
	for regionIdx, patch := range regions {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		rec.RegionFound()

		blocks, err := processRegion(ctx, regionIdx, p, patch, params, tol, backend, rasterizer, findSelfIntersecting, rec)
		if err != nil {
			if errors.Is(err, ErrSkinTopologyAnomaly) {
				return out, fmt.Errorf("support: region %d: %w", regionIdx, err)
			}
			log.WithField("region_id", regionIdx).WithError(err).Warn("skipping region")
			rec.BlockSkipped(skipReason(err))
			continue
		}
		out = append(out, blocks...)
	}
	return out, nil
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, ErrSubthresholdArea):
		return "subthreshold_area"
	case errors.Is(err, primitives.ErrDegenerateOutline):
		return "degenerate_outline"
	case errors.Is(err, ErrCSGFailure):
		return "csg_failure"
	case errors.Is(err, ErrProjectionMismatch):
		return "projection_mismatch"
	default:
		return "other"
	}
}

// cutMeshUpperCosCutoff is cos(89.95 degrees): isolateUpperSurface keeps
// a face when its normal's angle to +Z is under this cutoff, so the
// near-vertical side walls and every downward-facing face of cutMesh are
// left out of cutMeshUpper.
var cutMeshUpperCosCutoff = math.Cos(89.95 * math.Pi / 180)

func processRegion(ctx context.Context, regionIdx int, part, patch *geom3d.Part, params coreconfig.Parameters, tol coreconfig.Tolerances, backend primitives.CSGBackend, rasterizer primitives.DepthRasterizer, findSelfIntersecting bool, rec *coremetrics.Recorder) ([]blocksupport.BlockSupport, error) {
	flat, err := primitives.FlattenSupportRegion(patch)
	if err != nil {
		return nil, err
	}

	simplified := simplifyOutline(flat, params.SimplifyPolygonFactor)
	shrunk := shrinkPolygon(simplified, params.OuterSupportEdgeGap)

	area := math.Abs(polygon.SignedArea(shrunk.Outer))
	if area < params.MinimumAreaThreshold {
		return nil, ErrSubthresholdArea
	}

	partBBox := part.BBox()
	prismHeight := partBBox.Max.Z - partBBox.Min.Z + 1
	prism := primitives.ExtrudePolygon(shrunk, -prismHeight).Translate(geom3d.Vec3{Z: partBBox.Max.Z})

	cutMesh, err := primitives.BooleanIntersect(backend, prism, part)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCSGFailure, err)
	}
	cutMesh, err = primitives.ResolveSelfIntersections(backend, cutMesh)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCSGFailure, err)
	}

	if math.Abs(cutMesh.Volume()) < tol.IntersectionVolume {
		if params.UseApproxBasePlateSupport {
			return []blocksupport.BlockSupport{
				blocksupport.NewBlockSupport(patch, prism, false, nil, part),
			}, nil
		}
		if !findSelfIntersecting {
			return nil, nil
		}
		// findSelfIntersecting is true and the part declined approximate
		// base-plate support: fall through and reconstruct normally.
	}

	// findSelfIntersecting gates every block's reported intersectsPart:
	// set false, a caller is declaring it doesn't want this call to
	// detect or report part intersection at all, so every block below
	// carries that verdict regardless of cutMesh's actual volume.
	intersectsPart := findSelfIntersecting

	cutMeshUpper := isolateUpperSurface(cutMesh, cutMeshUpperCosCutoff)
	if cutMeshUpper == nil {
		return nil, ErrProjectionMismatch
	}

	bbox := cutMesh.BBox()
	upperGrid, err := rasterizer.Rasterize(patch, params.RayProjectionResolution, geom3d.UnitZ, bbox)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProjectionMismatch, err)
	}
	lowerGrid, err := rasterizer.Rasterize(cutMeshUpper, params.RayProjectionResolution, geom3d.Vec3{Z: -1}, bbox)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProjectionMismatch, err)
	}
	heightMap := heightMapFromGrids(upperGrid, lowerGrid)

	combined := combinedGrid(heightMap)
	blurred := gaussianBlur(combined, tol.GaussianSigma)
	magnitude := sobelMagnitude(blurred)
	tau := 5 * math.Tan(params.OverhangAngle*math.Pi/180) * params.RayProjectionResolution
	subRegions := isoRegions(magnitude, combined, tau)

	if len(subRegions) == 0 {
		return []blocksupport.BlockSupport{
			blocksupport.NewBlockSupport(patch, cutMesh, intersectsPart, cutMeshUpper, part),
		}, nil
	}

	var out []blocksupport.BlockSupport
	for subIdx, pixels := range subRegions {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		sub, err := reconstructSubRegion(backend, cutMesh, cutMeshUpper, patch, bbox, pixels, params, part, intersectsPart)
		if err != nil {
			log.WithField("region_id", regionIdx).WithField("sub_region_id", subIdx).WithError(err).Warn("skipping sub-region")
			rec.BlockSkipped("csg_failure")
			continue
		}
		rec.BlockEmitted()
		out = append(out, sub)
	}
	return out, nil
}

// combinedGrid extracts the single-scalar height field gradient
// segmentation measures from a HeightMap: lowerImg where it clears the
// 1.01mm base-material cutoff, else upperImg.
func combinedGrid(hm *HeightMap) [][]float64 {
	out := make([][]float64, hm.H)
	for y := 0; y < hm.H; y++ {
		out[y] = make([]float64, hm.W)
		for x := 0; x < hm.W; x++ {
			out[y][x] = hm.CombinedHeight(x, y)
		}
	}
	return out
}

// isolateUpperSurface extracts the faces of vol whose normal stays
// within cosCutoff of +Z — the cap the teeth/skin stages wrap against
// (cutMeshUpper at the pipeline's fixed 89.95 degree cutoff).
func isolateUpperSurface(vol *geom3d.Part, cosCutoff float64) *geom3d.Part {
	var idx []int
	for fi, n := range vol.FaceNormal {
		if n.Z > cosCutoff {
			idx = append(idx, fi)
		}
	}
	if len(idx) == 0 {
		return nil
	}
	return extractFaces(vol, idx)
}

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

// reconstructSubRegion rebuilds one BlockSupport from a sub-region's
// pixel mask: trace its footprint into a world-XY polygon, simplify and
// Minkowski-shrink it, triangulate at triangulationSpacing, ray-cast
// each vertex up against patch and down against cutMeshUpper to get a
// conformal top and bottom cap, extrude between them, and subtract
// cutMesh to leave a clean, part-conformal support volume.
func reconstructSubRegion(backend primitives.CSGBackend, cutMesh, cutMeshUpper, patch *geom3d.Part, bbox geom3d.AABB3, pixels [][2]int, params coreconfig.Parameters, part *geom3d.Part, intersectsPart bool) (blocksupport.BlockSupport, error) {
	footprint, err := pixelMaskOutline(pixels)
	if err != nil {
		return blocksupport.BlockSupport{}, err
	}
	worldRing := make(types.Ring, len(footprint))
	for i, p := range footprint {
		worldRing[i] = types.Point{
			X: bbox.Min.X + p.X*params.RayProjectionResolution,
			Y: bbox.Min.Y + p.Y*params.RayProjectionResolution,
		}
	}

	simplified := simplifyOutline(types.Polygon{Outer: worldRing}, params.SimplifyPolygonFactor)
	shrunk := shrinkPolygon(simplified, params.InnerSupportEdgeGap)

	area := math.Abs(polygon.SignedArea(shrunk.Outer))
	if area < params.MinimumAreaThreshold {
		return blocksupport.BlockSupport{}, ErrSubthresholdArea
	}

	maxArea := params.TriangulationSpacing * params.TriangulationSpacing
	tm, err := primitives.TriangulatePolygon(shrunk, maxArea)
	if err != nil {
		return blocksupport.BlockSupport{}, fmt.Errorf("%w: %v", ErrCSGFailure, err)
	}

	verts := tm.GetVertices()
	tops := make([]float64, len(verts))
	bottoms := make([]float64, len(verts))
	for i, v := range verts {
		up := geom3d.CastZ(patch, v.X, v.Y, 1)
		if !up.Hit {
			return blocksupport.BlockSupport{}, fmt.Errorf("%w: vertex (%.3f,%.3f) missed the overhang patch", ErrProjectionMismatch, v.X, v.Y)
		}
		tops[i] = up.Z + params.UpperProjectionOffset

		down := geom3d.CastZ(cutMeshUpper, v.X, v.Y, -1)
		if down.Hit {
			bottoms[i] = down.Z - params.LowerProjectionOffset
		} else {
			bottoms[i] = 0
		}
	}

	prism := capsToPrism(tm, bottoms, tops)
	blockVolume, err := primitives.BooleanDifference(backend, prism, cutMesh)
	if err != nil {
		return blocksupport.BlockSupport{}, fmt.Errorf("%w: %v", ErrCSGFailure, err)
	}
	return blocksupport.NewBlockSupport(patch, blockVolume, intersectsPart, cutMeshUpper, part), nil
}

// shrinkPolygon Minkowski-shrinks poly's outer ring inward by delta mm
// via a round-joined offset. delta<=0 is a no-op.
func shrinkPolygon(poly types.Polygon, delta float64) types.Polygon {
	if delta <= 0 {
		return poly
	}
	shrunk := primitives.PolygonOffset(types.Paths{poly.Outer}, -delta, primitives.OffsetJoinRound)
	if len(shrunk) == 0 {
		return poly
	}
	out := poly
	out.Outer = shrunk[0]
	return out
}

// pixelMaskOutline traces a 4-connected pixel mask's boundary into a
// single closed ring of grid-corner coordinates via unit-square edge
// cancellation: every mask pixel contributes its 4 corner-to-corner
// edges, and an edge shared by two adjacent mask pixels cancels,
// leaving only the outer boundary. Assumes pixels forms one
// simply-connected region with no interior holes, true of an isoRegions
// flood-fill component.
func pixelMaskOutline(pixels [][2]int) (types.Ring, error) {
	if len(pixels) == 0 {
		return nil, fmt.Errorf("support: empty sub-region pixel mask")
	}

	type corner [2]int
	type dirEdge struct{ from, to corner }

	norm := func(a, b corner) [2]corner {
		if a[0] < b[0] || (a[0] == b[0] && a[1] < b[1]) {
			return [2]corner{a, b}
		}
		return [2]corner{b, a}
	}

	count := make(map[[2]corner]int)
	dirs := make(map[[2]corner]dirEdge)
	add := func(a, b corner) {
		k := norm(a, b)
		count[k]++
		dirs[k] = dirEdge{a, b}
	}
	for _, px := range pixels {
		x, y := px[0], px[1]
		add(corner{x, y}, corner{x + 1, y})
		add(corner{x + 1, y}, corner{x + 1, y + 1})
		add(corner{x + 1, y + 1}, corner{x, y + 1})
		add(corner{x, y + 1}, corner{x, y})
	}

	adj := make(map[corner]corner)
	for k, n := range count {
		if n != 1 {
			continue
		}
		e := dirs[k]
		adj[e.from] = e.to
	}
	if len(adj) == 0 {
		return nil, fmt.Errorf("support: sub-region pixel mask has no boundary")
	}

	var start corner
	for c := range adj {
		start = c
		break
	}
	ring := make(types.Ring, 0, len(adj))
	cur := start
	for {
		ring = append(ring, types.Point{X: float64(cur[0]), Y: float64(cur[1])})
		next, ok := adj[cur]
		if !ok {
			return nil, fmt.Errorf("support: sub-region pixel mask boundary is not a closed loop")
		}
		cur = next
		if cur == start {
			break
		}
		if len(ring) > len(adj) {
			return nil, fmt.Errorf("support: sub-region pixel mask boundary failed to close")
		}
	}
	return ring, nil
}

// capsToPrism builds a solid whose footprint is m's 2D triangulation,
// with per-vertex bottom and top Z caps — the per-sub-region analogue
// of ExtrudePolygon, which only supports a single flat extrusion
// height rather than a ray-cast height field on each side.
func capsToPrism(m *mesh.Mesh, bottom, top []float64) *geom3d.Part {
	mverts := m.GetVertices()
	n := len(mverts)

	verts := make([]geom3d.Vec3, 0, 2*n)
	bottomStart := 0
	for i, p := range mverts {
		verts = append(verts, geom3d.Vec3{X: p.X, Y: p.Y, Z: bottom[i]})
	}
	topStart := n
	for i, p := range mverts {
		verts = append(verts, geom3d.Vec3{X: p.X, Y: p.Y, Z: top[i]})
	}

	tris := m.GetTriangles()
	faces := make([]geom3d.Face, 0, 2*len(tris)+2*n)
	for _, t := range tris {
		a, b, c := int(t[0]), int(t[1]), int(t[2])
		faces = append(faces, geom3d.Face{bottomStart + b, bottomStart + a, bottomStart + c})
		faces = append(faces, geom3d.Face{topStart + a, topStart + b, topStart + c})
	}

	for _, e := range meshBoundaryEdges(m) {
		i, j := int(e[0]), int(e[1])
		b0, b1 := bottomStart+i, bottomStart+j
		t0, t1 := topStart+i, topStart+j
		faces = append(faces, geom3d.Face{b0, b1, t1}, geom3d.Face{b0, t1, t0})
	}

	return geom3d.NewPart(verts, faces)
}

// meshBoundaryEdges returns m's boundary edges (used by exactly one
// triangle), each directed to match that triangle's winding — the 2D
// analogue of geom3d.BoundaryEdges for a mesh.Mesh triangulation.
func meshBoundaryEdges(m *mesh.Mesh) []types.Edge {
	canon := func(a, b types.VertexID) types.Edge {
		if a < b {
			return types.Edge{a, b}
		}
		return types.Edge{b, a}
	}

	counts := make(map[types.Edge]int)
	dirs := make(map[types.Edge]types.Edge)
	for _, t := range m.GetTriangles() {
		vs := [3]types.VertexID{t[0], t[1], t[2]}
		for i := 0; i < 3; i++ {
			a, b := vs[i], vs[(i+1)%3]
			k := canon(a, b)
			counts[k]++
			dirs[k] = types.Edge{a, b}
		}
	}

	var out []types.Edge
	for k, n := range counts {
		if n == 1 {
			out = append(out, dirs[k])
		}
	}
	return out
}

// simplifyOutline approximates Douglas-Peucker-style polygon
// simplification with a grow-then-shrink morphological smoothing pass
// (a round-trip PolygonOffset by ±factor), which removes the same small
// jagged features a simplification pass targets without needing a
// separate point-decimation algorithm.
func simplifyOutline(poly types.Polygon, factor float64) types.Polygon {
	if factor <= 0 {
		return poly
	}
	grown := primitives.PolygonOffset(types.Paths{poly.Outer}, factor, primitives.OffsetJoinRound)
	if len(grown) == 0 {
		return poly
	}
	shrunk := primitives.PolygonOffset(grown, -factor, primitives.OffsetJoinRound)
	if len(shrunk) == 0 {
		return poly
	}
	out := poly
	out.Outer = shrunk[0]
	return out
}
