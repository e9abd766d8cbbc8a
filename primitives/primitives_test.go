package primitives

import (
	"context"
	"math"
	"testing"

	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/types"
)

func flatPlate(z float64) *geom3d.Part {
	v := []geom3d.Vec3{
		{X: 0, Y: 0, Z: z}, {X: 10, Y: 0, Z: z}, {X: 10, Y: 10, Z: z}, {X: 0, Y: 10, Z: z},
	}
	faces := []geom3d.Face{{0, 1, 2}, {0, 2, 3}}
	return geom3d.NewPart(v, faces)
}

func TestFaceZProjectionWeightFlatDownFacingIsZero(t *testing.T) {
	p := flatPlate(0)
	// Flip winding so the normal points -Z.
	p.Faces[0] = geom3d.Face{p.Faces[0][0], p.Faces[0][2], p.Faces[0][1]}
	p.Faces[1] = geom3d.Face{p.Faces[1][0], p.Faces[1][2], p.Faces[1][1]}
	p2 := geom3d.NewPart(p.Vertices, p.Faces)

	weights := FaceZProjectionWeight(p2)
	for _, w := range weights {
		if math.Abs(w) > 1e-6 {
			t.Fatalf("expected ~0 weight for a face normal parallel to Z, got %v", w)
		}
	}
}

func TestSupportAnglesVerticalWallIsNinety(t *testing.T) {
	v := []geom3d.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 10}, {X: 0, Y: 0, Z: 10},
	}
	faces := []geom3d.Face{{0, 1, 2}, {0, 2, 3}}
	p := geom3d.NewPart(v, faces)

	angles := SupportAngles(p)
	for _, a := range angles {
		if math.Abs(a-90) > 1e-6 {
			t.Fatalf("expected vertical wall angle ~90, got %v", a)
		}
	}
}

func box(min, max geom3d.Vec3) *geom3d.Part {
	v := []geom3d.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z}, {X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z}, {X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z}, {X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z}, {X: min.X, Y: max.Y, Z: max.Z},
	}
	quad := func(a, b, c, d int) []geom3d.Face {
		return []geom3d.Face{{a, b, c}, {a, c, d}}
	}
	var faces []geom3d.Face
	faces = append(faces, quad(0, 3, 2, 1)...)
	faces = append(faces, quad(4, 5, 6, 7)...)
	faces = append(faces, quad(0, 1, 5, 4)...)
	faces = append(faces, quad(2, 3, 7, 6)...)
	faces = append(faces, quad(1, 2, 6, 5)...)
	faces = append(faces, quad(3, 0, 4, 7)...)
	return geom3d.NewPart(v, faces)
}

func TestExtrudePolygonVolumeMatchesPrism(t *testing.T) {
	poly := types.Polygon{Outer: types.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	part := ExtrudePolygon(poly, 5)
	vol := math.Abs(part.Volume())
	if math.Abs(vol-500) > 1e-6 {
		t.Fatalf("expected extrusion volume 500, got %v", vol)
	}
}

func TestFlattenSupportRegionRoundTrip(t *testing.T) {
	// A single open quad patch (not a closed solid): every edge has
	// exactly one incident face, so the whole perimeter is boundary.
	patch := flatPlate(3)

	flat, err := FlattenSupportRegion(patch)
	if err != nil {
		t.Fatalf("flatten failed: %v", err)
	}
	if len(flat.Outer) < 3 {
		t.Fatalf("expected a non-degenerate outer ring, got %d points", len(flat.Outer))
	}
}

func TestSectionMultiplaneFindsBoxCrossSection(t *testing.T) {
	b := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})

	sections, err := SectionMultiplane(context.Background(), b, geom3d.Vec3{}, geom3d.UnitZ, []float64{5})
	if err != nil {
		t.Fatalf("section failed: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected 1 section at z=5, got %d", len(sections))
	}
	area := math.Abs(signedAreaOf(sections[0].Polygon.Outer))
	if math.Abs(area-100) > 1 {
		t.Fatalf("expected cross-section area ~100, got %v", area)
	}
}

func TestTriangulatePolygonProducesTriangles(t *testing.T) {
	poly := types.Polygon{Outer: types.Ring{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	m, err := TriangulatePolygon(poly, 0)
	if err != nil {
		t.Fatalf("triangulate failed: %v", err)
	}
	if m.NumTriangles() == 0 {
		t.Fatalf("expected at least one triangle")
	}
}

func TestPolygonOffsetAndClip(t *testing.T) {
	a := types.Paths{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	grown := PolygonOffset(a, 1, OffsetJoinMiter)
	if len(grown) != 1 {
		t.Fatalf("expected 1 ring from offset, got %d", len(grown))
	}

	b := types.Paths{{
		{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15},
	}}
	result := PolygonClip(a, b, ClipIntersection, FillNonZero)
	if len(result) == 0 {
		t.Fatalf("expected a non-empty intersection")
	}
}
