package geom3d

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSavePartLoadPartRoundTrip(t *testing.T) {
	verts := []Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	faces := []Face{{0, 1, 2}}
	p := NewPart(verts, faces)

	path := filepath.Join(t.TempDir(), "part.json")
	if err := SavePart(p, path); err != nil {
		t.Fatalf("SavePart: %v", err)
	}

	got, err := LoadPart(path)
	if err != nil {
		t.Fatalf("LoadPart: %v", err)
	}
	if len(got.Vertices) != len(verts) || len(got.Faces) != len(faces) {
		t.Fatalf("round trip mismatch: got %d verts, %d faces", len(got.Vertices), len(got.Faces))
	}
	for i, v := range verts {
		if got.Vertices[i] != v {
			t.Fatalf("vertex %d mismatch: got %v want %v", i, got.Vertices[i], v)
		}
	}
}

func TestSavePartNilErrors(t *testing.T) {
	if err := SavePart(nil, filepath.Join(os.TempDir(), "x.json")); err == nil {
		t.Fatalf("expected error saving nil part")
	}
}

func TestLoadPartMissingFileErrors(t *testing.T) {
	if _, err := LoadPart(filepath.Join(t.TempDir(), "does-not-exist.json")); err == nil {
		t.Fatalf("expected error loading missing file")
	}
}
