package geom3d

import (
	"encoding/json"
	"fmt"
	"os"
)

// PartData is Part's serializable form — the host boundary's on-disk
// mesh format, mirroring the mesh package's MeshData/Save/Load pattern
// but for a 3D Part rather than a 2D triangulation.
type PartData struct {
	Vertices []Vec3 `json:"vertices"`
	Faces    []Face `json:"faces"`
}

// SavePart writes p's vertices and faces to filename as JSON. Derived
// fields (normals, adjacency) are recomputed on load rather than saved.
func SavePart(p *Part, filename string) error {
	if p == nil {
		return fmt.Errorf("geom3d: nil part")
	}
	data := PartData{Vertices: p.Vertices, Faces: p.Faces}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// LoadPart reads a Part previously written by SavePart.
func LoadPart(filename string) (*Part, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data PartData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("geom3d: decode %s: %w", filename, err)
	}
	return NewPart(data.Vertices, data.Faces), nil
}
