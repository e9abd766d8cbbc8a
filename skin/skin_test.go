package skin

import (
	"testing"

	"github.com/amcore/slmsupport/blocksupport"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/truss"
	"github.com/stretchr/testify/assert"
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

func TestExtractWallLoopsOnBoxYieldsTopAndBottom(t *testing.T) {
	vol := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	top, bottom, err := extractWallLoops(vol, truss.DefaultParams().Tol.SideAngle)
	if err != nil {
		t.Fatalf("extractWallLoops: %v", err)
	}
	if len(top) == 0 || len(bottom) == 0 {
		t.Fatalf("expected at least one top and one bottom loop, got %d top, %d bottom", len(top), len(bottom))
	}
}

func TestPairLoopsMatchesEqualLengthLoops(t *testing.T) {
	vol := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	top, bottom, err := extractWallLoops(vol, truss.DefaultParams().Tol.SideAngle)
	if err != nil {
		t.Fatalf("extractWallLoops: %v", err)
	}
	pairs := pairLoops(top, bottom, truss.DefaultParams().Tol.PairMatch)
	if len(pairs) == 0 {
		t.Fatalf("expected at least one matched pair on a uniform box")
	}
	for _, p := range pairs {
		lt, lb := loopLength2D(p.Top), loopLength2D(p.Bottom)
		assert.InDelta(t, lt, lb, lb*truss.DefaultParams().Tol.PairMatch, "matched pair should satisfy the length-ratio test")
	}
}

func TestGenerateSkinOnBoxProducesMesh(t *testing.T) {
	vol := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	b := blocksupport.NewBlockSupport(vol, vol, false, nil, vol)
	part, err := GenerateSkin(b, truss.DefaultParams())
	if err != nil {
		t.Fatalf("GenerateSkin: %v", err)
	}
	if part == nil || len(part.Faces) == 0 {
		t.Fatalf("expected non-empty skin mesh")
	}
}

func TestGenerateSkinNilVolumeErrors(t *testing.T) {
	b := blocksupport.NewBlockSupport(nil, nil, false, nil, nil)
	if _, err := GenerateSkin(b, truss.DefaultParams()); err == nil {
		t.Fatalf("expected error for nil support volume")
	}
}
