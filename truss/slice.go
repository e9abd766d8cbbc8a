package truss

import (
	"context"
	"fmt"
	"math"

	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/blocksupport"
	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/primitives"
	"github.com/amcore/slmsupport/types"
)

// topBottomTolerance is the slice-local |Δy| threshold the edge
// classification step uses to tell a top/bottom (toothed) edge apart
// from a vertical side-wall edge.
const topBottomTolerance = 1e-4

// GenerateSlices slices b's support volume on X- and Y-oriented planes
// spaced by params.GridSpacing, stamps teeth and a truss lattice into
// each 2D cross-section, and transforms the
// triangulated result back to world space via the slice's local frame.
func GenerateSlices(b blocksupport.BlockSupport, params Params) ([]*geom3d.Part, error) {
	vol := b.SupportVolume
	if vol == nil {
		return nil, fmt.Errorf("truss: block support has no support volume")
	}

	bbox := vol.BBox()
	center := bbox.Center()
	ctx := context.Background()

	var parts []*geom3d.Part
	for _, dir := range [2]geom3d.Vec3{{X: 1}, {Y: 1}} {
		spacing := params.P.GridSpacing.X
		if dir.Y != 0 {
			spacing = params.P.GridSpacing.Y
		}
		extent := bbox.Max.Sub(bbox.Min).Dot(dir)
		heights := symmetricPositions(extent, spacing)

		sections, err := primitives.SectionMultiplane(ctx, vol, center, dir, heights)
		if err != nil {
			return parts, fmt.Errorf("truss: slicing: %w", err)
		}
		for _, sec := range sections {
			part, err := sliceToPart(sec, params)
			if err != nil {
				continue
			}
			if part != nil {
				parts = append(parts, part)
			}
		}
	}

	if params.P.MergeMesh {
		merged, err := primitives.ResolveSelfIntersections(nil, concatParts(parts))
		if err != nil {
			return parts, fmt.Errorf("truss: merging slices: %w", err)
		}
		return []*geom3d.Part{merged}, nil
	}
	return parts, nil
}

// symmetricPositions returns offsets from 0 spaced by spacing, covering
// [-extent/2, extent/2] symmetrically — "slice positions are chosen
// symmetrically around the bbox center so that X- and Y-grids intersect
// at consistent interior points across adjacent blocks."
func symmetricPositions(extent, spacing float64) []float64 {
	if spacing <= 1e-9 {
		return nil
	}
	half := extent / 2
	n := int(half / spacing)
	var out []float64
	for k := -n; k <= n; k++ {
		out = append(out, float64(k)*spacing)
	}
	return out
}

// sliceToPart applies steps 1-7 of the per-slice algorithm to one
// cross-section, returning its triangulated, world-space mesh.
func sliceToPart(sec primitives.Section, params Params) (*geom3d.Part, error) {
	if len(sec.Polygon.Outer) < 3 {
		return nil, fmt.Errorf("truss: degenerate slice outline")
	}
	outerCCW := polygon.ReverseIfNeeded(append(types.Ring(nil), sec.Polygon.Outer...), true)

	toothed, wallPaths := stampRing(outerCCW, topBottomTolerance, params.P.Tooth,
		params.P.SupportTeethUpperPenetration, params.P.UseUpperSupportTeeth,
		params.P.UseLowerSupportTeeth, params.P.SupportWallThickness/2)

	outerPath := types.Paths{toothed}
	if params.P.SupportWallThickness > 1e-9 && len(wallPaths) > 0 {
		wallPaths = primitives.PolygonClip(wallPaths, outerPath, primitives.ClipIntersection, primitives.FillNonZero)
	} else {
		wallPaths = nil
	}

	lattice := GenerateTrussLattice(toothed, params.P.GridSpacing.X, params.P.TrussAngle, params.P.TrussWidth)
	trussMasked := primitives.PolygonClip(lattice, outerPath, primitives.ClipIntersection, primitives.FillNonZero)

	var composed types.Paths
	if params.UseSupportBorder {
		inner := primitives.PolygonOffset(outerPath, -params.P.SupportBorderDistance, primitives.OffsetJoinMiter)
		if len(inner) == 0 {
			composed = outerPath
		} else {
			borderRing := primitives.PolygonClip(outerPath, inner, primitives.ClipDifference, primitives.FillNonZero)
			composed = UnionPaths(trussMasked, borderRing)
		}
	} else {
		composed = trussMasked
	}
	if len(wallPaths) > 0 {
		composed = UnionPaths(composed, wallPaths)
	}
	if len(composed) == 0 {
		return nil, fmt.Errorf("truss: empty composed slice")
	}

	poly := PathsToPolygon(composed)
	if len(poly.Outer) < 3 {
		return nil, fmt.Errorf("truss: composed slice has no outer ring")
	}
	maxArea := params.P.TriangulationSpacing * params.P.TriangulationSpacing
	m, err := primitives.TriangulatePolygon(poly, maxArea)
	if err != nil {
		return nil, err
	}
	return meshToPart(m, sec.Local), nil
}

// stampRing walks ring's edges, classifying each as vertical (kept
// straight) or top/bottom (stamped with the tooth profile per the
// useUpper/useLower toggles), and separately buffers the un-stamped
// top/bottom edges to half-width wallHalfWidth for the wall-thickening
// step — a "half-plane abutting the edge, Minkowski-expanded by
// supportWallThickness" collapsed into a direct per-edge buffer, which
// gives the same thickened strip along the top/bottom run without
// constructing an explicit half-plane polygon.
func stampRing(ring types.Ring, tol float64, tooth coreconfig.ToothProfile, upperPenetration float64, useUpper, useLower bool, wallHalfWidth float64) (types.Ring, types.Paths) {
	n := len(ring)
	_, minY, _, maxY := ringBounds(ring)
	midY := (minY + maxY) / 2

	var out types.Ring
	var wallPaths types.Paths
	out = append(out, ring[0])
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		if math.Abs(b.Y-a.Y) <= tol {
			out = append(out, b)
			continue
		}
		upper := (a.Y+b.Y)/2 > midY
		if wallHalfWidth > 1e-9 {
			if strut := BufferSegment(a, b, wallHalfWidth); strut != nil {
				wallPaths = UnionPaths(wallPaths, types.Paths{strut})
			}
		}
		useTeeth := upper && useUpper || !upper && useLower
		if !useTeeth {
			out = append(out, b)
			continue
		}
		stamped := StampToothedEdge(a, b, tooth, upperPenetration, upper)
		out = append(out, stamped[1:]...)
	}
	return out, wallPaths
}

func PathsToPolygon(paths types.Paths) types.Polygon {
	exteriors, interiors := primitives.SortExteriorInterior(paths)
	var out types.Polygon
	bestArea := -1.0
	for _, r := range exteriors {
		a := math.Abs(polygon.SignedArea(r))
		if a > bestArea {
			bestArea = a
			out.Outer = r
		}
	}
	out.Holes = append(out.Holes, interiors...)
	return out
}

type triMesh interface {
	GetVertices() []types.Point
	GetTriangles() []types.Triangle
}

func meshToPart(m triMesh, local geom3d.Transform) *geom3d.Part {
	verts := m.GetVertices()
	gverts := make([]geom3d.Vec3, len(verts))
	for i, v := range verts {
		gverts[i] = local.Apply(geom3d.Vec3{X: v.X, Y: v.Y})
	}
	tris := m.GetTriangles()
	faces := make([]geom3d.Face, len(tris))
	for i, t := range tris {
		faces[i] = geom3d.Face{int(t[0]), int(t[1]), int(t[2])}
	}
	return geom3d.NewPart(gverts, faces)
}

func concatParts(parts []*geom3d.Part) *geom3d.Part {
	var out *geom3d.Part
	for _, p := range parts {
		out = out.Append(p)
	}
	return out
}
