package csg

import (
	"math"
	"testing"

	"github.com/amcore/slmsupport/geom3d"
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
	faces = append(faces, quad(0, 3, 2, 1)...) // bottom (-Z outward)
	faces = append(faces, quad(4, 5, 6, 7)...) // top
	faces = append(faces, quad(0, 1, 5, 4)...) // -Y
	faces = append(faces, quad(2, 3, 7, 6)...) // +Y
	faces = append(faces, quad(1, 2, 6, 5)...) // +X
	faces = append(faces, quad(3, 0, 4, 7)...) // -X
	return geom3d.NewPart(v, faces)
}

func TestIntersectOverlappingBoxes(t *testing.T) {
	a := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	b := box(geom3d.Vec3{X: 5, Y: 5, Z: 5}, geom3d.Vec3{X: 15, Y: 15, Z: 15})

	result, err := Native{}.Intersect(a, b)
	if err != nil {
		t.Fatalf("intersect failed: %v", err)
	}
	vol := math.Abs(result.Volume())
	if math.Abs(vol-125) > 1 {
		t.Fatalf("expected intersection volume ~125, got %v", vol)
	}
}

func TestDifferenceRemovesOverlap(t *testing.T) {
	a := box(geom3d.Vec3{}, geom3d.Vec3{X: 10, Y: 10, Z: 10})
	b := box(geom3d.Vec3{X: 5, Y: 5, Z: 5}, geom3d.Vec3{X: 15, Y: 15, Z: 15})

	result, err := Native{}.Difference(a, b)
	if err != nil {
		t.Fatalf("difference failed: %v", err)
	}
	vol := math.Abs(result.Volume())
	// 1000 - 125 overlap
	if math.Abs(vol-875) > 2 {
		t.Fatalf("expected difference volume ~875, got %v", vol)
	}
}

func TestDisjointIntersectionIsEmpty(t *testing.T) {
	a := box(geom3d.Vec3{}, geom3d.Vec3{X: 1, Y: 1, Z: 1})
	b := box(geom3d.Vec3{X: 100, Y: 100, Z: 100}, geom3d.Vec3{X: 101, Y: 101, Z: 101})

	result, err := Native{}.Intersect(a, b)
	if err != nil {
		t.Fatalf("intersect failed: %v", err)
	}
	if len(result.Faces) != 0 {
		t.Fatalf("expected empty mesh for disjoint boxes, got %d faces", len(result.Faces))
	}
}

func TestResolveSelfIntersectionsWeldsAndDrops(t *testing.T) {
	b := box(geom3d.Vec3{}, geom3d.Vec3{X: 1, Y: 1, Z: 1})
	// Duplicate a face to simulate CSG-produced redundancy.
	b.Faces = append(b.Faces, b.Faces[0])
	repaired, err := Native{}.ResolveSelfIntersections(b)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(repaired.Faces) != len(b.Faces)-1 {
		t.Fatalf("expected duplicate face to be dropped, got %d faces from %d", len(repaired.Faces), len(b.Faces))
	}
}
