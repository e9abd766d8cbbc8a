package primitives

import (
	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/types"
)

// OffsetJoin selects how PolygonOffset joins convex corners.
type OffsetJoin = polygon.JoinType

// Offset join styles, re-exported from algorithm/polygon so callers
// outside this package never need to import it directly.
const (
	OffsetJoinMiter  = polygon.JoinMiter
	OffsetJoinRound  = polygon.JoinRound
	OffsetJoinSquare = polygon.JoinSquare
)

// ClipOp selects the Boolean operation PolygonClip performs.
type ClipOp = polygon.ClipOp

const (
	ClipIntersection = polygon.ClipIntersection
	ClipUnion        = polygon.ClipUnion
	ClipDifference   = polygon.ClipDifference
)

// FillRule names an interior/exterior resolution rule. PolygonClip
// accepts one, but polygon.Clip does not consult it: FillNonZero and
// FillEvenOdd give the same result.
type FillRule = polygon.FillRule

const (
	FillNonZero = polygon.FillNonZero
	FillEvenOdd = polygon.FillEvenOdd
)

// PolygonOffset grows or shrinks paths by delta using a Clipper-style
// offset engine — the Minkowski expansion/contraction used for
// OuterSupportEdgeGap/InnerSupportEdgeGap/TrussWidth/SupportWallThickness.
func PolygonOffset(paths types.Paths, delta float64, join OffsetJoin) types.Paths {
	return polygon.Offset(paths, delta, join, polygon.EndClosedPolygon)
}

// PolygonClip performs a 2D polygon Boolean between subjects and clips,
// used to compose truss hatches, wall half-planes, and border offsets
// into a slice's final outline.
func PolygonClip(subjects, clips types.Paths, op ClipOp, rule FillRule) types.Paths {
	return polygon.Clip(subjects, clips, op, rule)
}

// SortExteriorInterior classifies paths into outer (CCW) and inner
// (CW) rings.
func SortExteriorInterior(paths types.Paths) (exteriors, interiors types.Paths) {
	return polygon.SortExteriorInterior(paths)
}
