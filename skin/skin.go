package skin

import (
	"fmt"

	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/blocksupport"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/primitives"
	"github.com/amcore/slmsupport/truss"
	"github.com/amcore/slmsupport/types"
)

// GenerateSkin isolates b's support volume's vertical-wall boundary
// curves, pairs top against bottom, unrolls each pair into a 2D
// (arc-length, z) strip, stamps teeth, fills with the same
// truss+border pattern §4.D uses per slice, and re-wrap the result onto
// the block's own top/bottom curves. A block whose wall topology doesn't
// resolve into at least one paired loop contributes no skin geometry —
// the caller keeps the block's truss regardless.
func GenerateSkin(b blocksupport.BlockSupport, params truss.Params) (*geom3d.Part, error) {
	vol := b.SupportVolume
	if vol == nil {
		return nil, fmt.Errorf("skin: block support has no support volume")
	}

	top, bottom, err := extractWallLoops(vol, params.Tol.SideAngle)
	if err != nil {
		return nil, nil //nolint:nilerr // skip skin, keep truss, no hard error
	}
	pairs := pairLoops(top, bottom, params.Tol.PairMatch)
	if len(pairs) == 0 {
		return nil, nil
	}

	var out *geom3d.Part
	for _, pair := range pairs {
		part, err := skinOnePair(pair, params)
		if err != nil || part == nil {
			continue
		}
		out = out.Append(part)
	}
	return out, nil
}

// skinOnePair implements §4.E steps 4-9 for a single matched top/bottom
// boundary-curve pair.
func skinOnePair(pair loopPair, params truss.Params) (*geom3d.Part, error) {
	outline, topCount, amap := unrolledOutline(pair)
	if len(outline) < 3 {
		return nil, fmt.Errorf("skin: degenerate unrolled outline")
	}

	toothed, wallPaths := stampSkinOutline(outline, topCount, params)

	resampled := resampleRing(toothed, resampleSpacing)
	outerPath := types.Paths{resampled}

	if params.P.SupportWallThickness > 1e-9 && len(wallPaths) > 0 {
		wallPaths = primitives.PolygonClip(wallPaths, outerPath, primitives.ClipIntersection, primitives.FillNonZero)
	} else {
		wallPaths = nil
	}

	lattice := truss.GenerateTrussLattice(resampled, params.P.GridSpacing.X, params.P.TrussAngle, params.P.TrussWidth)
	trussMasked := primitives.PolygonClip(lattice, outerPath, primitives.ClipIntersection, primitives.FillNonZero)

	var composed types.Paths
	if params.UseSupportBorder {
		inner := primitives.PolygonOffset(outerPath, -params.P.SupportBorderDistance, primitives.OffsetJoinMiter)
		if len(inner) == 0 {
			composed = outerPath
		} else {
			borderRing := primitives.PolygonClip(outerPath, inner, primitives.ClipDifference, primitives.FillNonZero)
			composed = truss.UnionPaths(trussMasked, borderRing)
		}
	} else {
		composed = trussMasked
	}
	if len(wallPaths) > 0 {
		composed = truss.UnionPaths(composed, wallPaths)
	}
	if len(composed) == 0 {
		return nil, fmt.Errorf("skin: empty composed skin polygon")
	}

	poly := truss.PathsToPolygon(composed)
	if len(poly.Outer) < 3 {
		return nil, fmt.Errorf("skin: composed skin has no outer ring")
	}

	const maxArea = 4.0
	m, err := primitives.TriangulatePolygon(poly, maxArea)
	if err != nil {
		return nil, fmt.Errorf("skin: triangulate: %w", err)
	}

	pm := newPlanarMesh(m).subdivideN(params.P.NumSkinMeshSubdivideIterations)
	return rewrapToWorld(pm, amap), nil
}

// stampSkinOutline applies the tooth profile along the top and/or bottom
// chain of an unrolled outline (outline[0:topCount] is the top chain in
// forward order, outline[topCount:] the bottom chain already reversed to
// close the ring) per useUpperSupportTeeth/useLowerSupportTeeth, and
// buffers each un-stamped chain, closed back to its first point, into
// wall struts with truss.BufferChain. (truss.stampRing instead buffers
// only the non-horizontal edges of a slice, one edge at a time.)
func stampSkinOutline(outline types.Ring, topCount int, params truss.Params) (types.Ring, types.Paths) {
	topChain := append([]types.Point(nil), outline[:topCount]...)
	bottomChain := append([]types.Point(nil), outline[topCount:]...)

	var wallPaths types.Paths
	halfWidth := params.P.SupportWallThickness / 2
	if halfWidth > 1e-9 {
		wallPaths = truss.UnionPaths(wallPaths, truss.BufferChain(closeChain(topChain), halfWidth))
		wallPaths = truss.UnionPaths(wallPaths, truss.BufferChain(closeChain(bottomChain), halfWidth))
	}

	if params.P.UseUpperSupportTeeth {
		topChain = truss.StampToothedPath(topChain, params.P.Tooth, params.P.SupportTeethUpperPenetration, true)
	}
	if params.P.UseLowerSupportTeeth {
		bottomChain = truss.StampToothedPath(bottomChain, params.P.Tooth, params.P.SupportTeethUpperPenetration, false)
	}

	ring := append(types.Ring(nil), topChain...)
	ring = append(ring, bottomChain...)
	return polygon.ReverseIfNeeded(ring, true), wallPaths
}

// closeChain returns chain with its first point appended, so BufferChain
// treats it as a closed loop rather than an open path missing its
// closing segment.
func closeChain(chain []types.Point) []types.Point {
	if len(chain) == 0 {
		return chain
	}
	return append(append([]types.Point(nil), chain...), chain[0])
}

// rewrapToWorld implements step 9: every 2D vertex's X is an arc-length
// along the top loop, looked up via amap to recover world XY; Z comes
// directly from the vertex's unrolled Y coordinate.
func rewrapToWorld(pm planarMesh, amap arcMap) *geom3d.Part {
	verts := make([]geom3d.Vec3, len(pm.Verts))
	for i, v := range pm.Verts {
		x, y := amap.sampleXY(v.X)
		verts[i] = geom3d.Vec3{X: x, Y: y, Z: v.Y}
	}
	faces := make([]geom3d.Face, len(pm.Tris))
	for i, t := range pm.Tris {
		faces[i] = geom3d.Face{t[0], t[1], t[2]}
	}
	return geom3d.NewPart(verts, faces)
}
