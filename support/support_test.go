package support

import (
	"context"
	"math"
	"testing"

	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/mesh"
	"github.com/amcore/slmsupport/types"
)

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

func TestIdentifySupportRegionsBoxProducesBlocks(t *testing.T) {
	p := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	params := coreconfig.Default()
	params.RayProjectionResolution = 1.0 // coarse grid to keep the test fast
	tol := coreconfig.DefaultTolerances()

	blocks, err := IdentifySupportRegions(context.Background(), p, params, tol, nil, nil, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) == 0 {
		t.Fatalf("expected at least one block support for a box's downward-facing bottom")
	}
	for _, b := range blocks {
		if b.SupportVolume == nil {
			t.Fatalf("expected a non-nil support volume")
		}
	}
}

func TestIdentifySupportRegionsNilPartErrors(t *testing.T) {
	params := coreconfig.Default()
	tol := coreconfig.DefaultTolerances()
	if _, err := IdentifySupportRegions(context.Background(), nil, params, tol, nil, nil, true, nil); err == nil {
		t.Fatalf("expected error for nil part")
	}
}

// A solid box's cutMesh volume is well above the default IntersectionVolume
// threshold, so every emitted block's IntersectsPart should directly track
// the findSelfIntersecting argument this call was made with.
func TestIdentifySupportRegionsIntersectsPartTracksFindSelfIntersecting(t *testing.T) {
	p := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	params := coreconfig.Default()
	params.RayProjectionResolution = 1.0
	tol := coreconfig.DefaultTolerances()

	blocksTrue, err := IdentifySupportRegions(context.Background(), p, params, tol, nil, nil, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocksTrue) == 0 {
		t.Fatalf("expected at least one block support")
	}
	for _, b := range blocksTrue {
		if !b.IntersectsPart {
			t.Fatalf("expected IntersectsPart true when findSelfIntersecting is true")
		}
	}

	blocksFalse, err := IdentifySupportRegions(context.Background(), p, params, tol, nil, nil, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocksFalse) == 0 {
		t.Fatalf("expected at least one block support")
	}
	for _, b := range blocksFalse {
		if b.IntersectsPart {
			t.Fatalf("expected IntersectsPart false for every block when findSelfIntersecting is false")
		}
	}
}

func TestPixelMaskOutlineTracesRectangle(t *testing.T) {
	// A 2x2 pixel block: (0,0),(1,0),(0,1),(1,1).
	pixels := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	ring, err := pixelMaskOutline(pixels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	area := math.Abs(polygon.SignedArea(ring))
	if math.Abs(area-4) > 1e-9 {
		t.Fatalf("expected enclosed area 4, got %v", area)
	}
}

func TestPixelMaskOutlineEmptyMaskErrors(t *testing.T) {
	if _, err := pixelMaskOutline(nil); err == nil {
		t.Fatalf("expected error for an empty pixel mask")
	}
}

func TestCapsToPrismVolumeMatchesUniformBox(t *testing.T) {
	m := mesh.NewMesh()
	v00, err := m.AddVertex(types.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	v10, err := m.AddVertex(types.Point{X: 2, Y: 0})
	if err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	v11, err := m.AddVertex(types.Point{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	v01, err := m.AddVertex(types.Point{X: 0, Y: 2})
	if err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := m.AddTriangle(v00, v10, v11); err != nil {
		t.Fatalf("AddTriangle: %v", err)
	}
	if err := m.AddTriangle(v00, v11, v01); err != nil {
		t.Fatalf("AddTriangle: %v", err)
	}

	bottoms := []float64{0, 0, 0, 0}
	tops := []float64{3, 3, 3, 3}
	prism := capsToPrism(m, bottoms, tops)

	got := math.Abs(prism.Volume())
	want := 2.0 * 2.0 * 3.0
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected prism volume %v (2x2 footprint x 3mm height), got %v", want, got)
	}
}
