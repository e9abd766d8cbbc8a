package overhang

import (
	"testing"

	"github.com/amcore/slmsupport/geom3d"
)

// downwardPlate builds a single quad, normal facing -Z, flat (angle 0
// from horizontal — the worst-case overhang).
func downwardPlate() *geom3d.Part {
	v := []geom3d.Vec3{
		{X: 0, Y: 0, Z: 5}, {X: 0, Y: 10, Z: 5}, {X: 10, Y: 10, Z: 5}, {X: 10, Y: 0, Z: 5},
	}
	faces := []geom3d.Face{{0, 1, 2}, {0, 2, 3}}
	return geom3d.NewPart(v, faces)
}

func TestFindOverhangSurfacesFlatDownFacingQualifies(t *testing.T) {
	p := downwardPlate()
	groups, err := FindOverhangSurfaces(p, 45, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 overhang patch, got %d", len(groups))
	}
	if groups[0].NumFaces() != 2 {
		t.Fatalf("expected both faces of the flat plate to qualify, got %d", groups[0].NumFaces())
	}
}

func TestFindOverhangSurfacesUpFacingDoesNotQualify(t *testing.T) {
	v := []geom3d.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 0, Y: 10, Z: 0},
	}
	faces := []geom3d.Face{{0, 1, 2}, {0, 2, 3}} // wound so normal is +Z
	p := geom3d.NewPart(v, faces)
	if p.FaceNormal[0].Z <= 0 {
		t.Fatalf("test fixture winding is wrong, got normal %v", p.FaceNormal[0])
	}

	groups, err := FindOverhangSurfaces(p, 45, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("expected no overhang surfaces for an up-facing plate, got %d", len(groups))
	}
}

func TestFindOverhangPointsDetectsLocalMinimum(t *testing.T) {
	// A downward-pointing pyramid apex: apex lower than all its
	// neighbors and (by construction) a downward-facing vertex normal.
	v := []geom3d.Vec3{
		{X: 5, Y: 5, Z: 0},  // apex (0)
		{X: 0, Y: 0, Z: 5},  // 1
		{X: 10, Y: 0, Z: 5}, // 2
		{X: 10, Y: 10, Z: 5},
		{X: 0, Y: 10, Z: 5},
	}
	faces := []geom3d.Face{{0, 2, 1}, {0, 3, 2}, {0, 4, 3}, {0, 1, 4}}
	p := geom3d.NewPart(v, faces)

	pts := FindOverhangPoints(p)
	found := false
	for _, vi := range pts {
		if vi == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected apex vertex 0 to be detected as an overhang point, got %v", pts)
	}
}
