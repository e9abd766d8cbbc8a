package truss

import (
	"math"
	"testing"

	"github.com/amcore/slmsupport/blocksupport"
	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/geom3d"
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

func TestToothProfileIdempotentResample(t *testing.T) {
	tooth := coreconfig.ToothProfile{A: 1.5, B: 0.1, C: 1.5, D: 0.2}
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 10, Y: 0}
	first := StampToothedEdge(a, b, tooth, 0.2, true)
	second := StampToothedEdge(a, b, tooth, 0.2, true)
	if len(first) != len(second) {
		t.Fatalf("expected idempotent resampling, got lengths %d and %d", len(first), len(second))
	}
	for i := range first {
		if math.Abs(first[i].X-second[i].X) > 1e-9 || math.Abs(first[i].Y-second[i].Y) > 1e-9 {
			t.Fatalf("vertex %d differs between resamples: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestToothProfileShortEdgeStaysStraight(t *testing.T) {
	tooth := coreconfig.ToothProfile{A: 1.5, B: 0.1, C: 1.5, D: 0.2}
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	out := StampToothedEdge(a, b, tooth, 0.2, true)
	if len(out) != 2 {
		t.Fatalf("expected edge shorter than one tooth period to stay straight, got %d points", len(out))
	}
}

func TestGenerateSlicesOnBoxProducesSlices(t *testing.T) {
	vol := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	b := blocksupport.NewBlockSupport(vol, vol, false, nil, vol)
	params := DefaultParams()

	parts, err := GenerateSlices(b, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) == 0 {
		t.Fatalf("expected at least one slice mesh for a 10mm box with 3mm grid spacing")
	}
	for _, p := range parts {
		if p.NumFaces() == 0 {
			t.Fatalf("expected a non-empty triangulated slice mesh")
		}
	}
}

func TestGenerateSlicesNilVolumeErrors(t *testing.T) {
	b := blocksupport.BlockSupport{}
	if _, err := GenerateSlices(b, DefaultParams()); err == nil {
		t.Fatalf("expected error for a block support with no volume")
	}
}
