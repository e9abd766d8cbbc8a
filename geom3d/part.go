package geom3d

import (
	"fmt"
	"math"
	"sort"
)

// Face is a triangle's three vertex indices into a Part's Vertices slice.
type Face [3]int

// Part is a triangular mesh: the in-core representation of the host
// application's input part, and of every BlockSupport volume, support
// surface, and truss/skin mesh this module produces. Assumed watertight
// and Z-up with overhang surfaces facing -Z, per the data model.
type Part struct {
	Vertices   []Vec3
	Faces      []Face
	FaceNormal []Vec3
	VertNormal []Vec3
	Neighbors  [][]int
}

// NewPart builds a Part from raw vertices and faces, computing per-face
// and per-vertex normals and vertex adjacency. This is the boundary where
// a host application hands its mesh to the support-generation core.
func NewPart(vertices []Vec3, faces []Face) *Part {
	p := &Part{
		Vertices: vertices,
		Faces:    faces,
	}
	p.recompute()
	return p
}

func (p *Part) recompute() {
	p.FaceNormal = make([]Vec3, len(p.Faces))
	for i, f := range p.Faces {
		p.FaceNormal[i] = faceNormal(p.Vertices, f)
	}
	p.VertNormal = computeVertexNormals(p.Vertices, p.Faces, p.FaceNormal)
	p.Neighbors = computeAdjacency(p.Vertices, p.Faces)
}

func faceNormal(vs []Vec3, f Face) Vec3 {
	a, b, c := vs[f[0]], vs[f[1]], vs[f[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	return n.Normalize()
}

// FaceArea returns the area of face i.
func (p *Part) FaceArea(i int) float64 {
	f := p.Faces[i]
	a, b, c := p.Vertices[f[0]], p.Vertices[f[1]], p.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Length() / 2
}

func computeVertexNormals(vs []Vec3, faces []Face, faceNormals []Vec3) []Vec3 {
	out := make([]Vec3, len(vs))
	for fi, f := range faces {
		a, b, c := vs[f[0]], vs[f[1]], vs[f[2]]
		area := b.Sub(a).Cross(c.Sub(a)).Length() / 2
		weighted := faceNormals[fi].Scale(area)
		for _, vi := range f {
			out[vi] = out[vi].Add(weighted)
		}
	}
	for i := range out {
		out[i] = out[i].Normalize()
	}
	return out
}

func computeAdjacency(vs []Vec3, faces []Face) [][]int {
	seen := make([]map[int]struct{}, len(vs))
	for i := range seen {
		seen[i] = make(map[int]struct{})
	}
	for _, f := range faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			seen[a][b] = struct{}{}
			seen[b][a] = struct{}{}
		}
	}
	out := make([][]int, len(vs))
	for i, set := range seen {
		ids := make([]int, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		out[i] = ids
	}
	return out
}

// BBox returns the mesh's axis-aligned bounding box.
func (p *Part) BBox() AABB3 {
	box := Empty3()
	for _, v := range p.Vertices {
		box = box.Expand(v)
	}
	return box
}

// Volume computes the signed volume of a closed mesh via the divergence
// theorem (sum of signed tetrahedra volumes against the origin). A
// watertight, outward-facing mesh yields a positive result.
func (p *Part) Volume() float64 {
	var vol float64
	for _, f := range p.Faces {
		a, b, c := p.Vertices[f[0]], p.Vertices[f[1]], p.Vertices[f[2]]
		vol += a.Dot(b.Cross(c)) / 6
	}
	return vol
}

// NumVertices returns the number of vertices.
func (p *Part) NumVertices() int { return len(p.Vertices) }

// NumFaces returns the number of faces.
func (p *Part) NumFaces() int { return len(p.Faces) }

// Clone returns a deep copy of the mesh.
func (p *Part) Clone() *Part {
	out := &Part{
		Vertices: append([]Vec3(nil), p.Vertices...),
		Faces:    append([]Face(nil), p.Faces...),
	}
	out.recompute()
	return out
}

// Translate returns a copy of the mesh translated by d.
func (p *Part) Translate(d Vec3) *Part {
	out := p.Clone()
	for i := range out.Vertices {
		out.Vertices[i] = out.Vertices[i].Add(d)
	}
	out.recompute()
	return out
}

// Append concatenates faces of o onto p, returning a new, disjoint mesh
// (no vertex merging). Used to combine the independently generated truss
// and skin meshes of a GridBlockSupport.
func (p *Part) Append(o *Part) *Part {
	if p == nil {
		return o.Clone()
	}
	if o == nil {
		return p.Clone()
	}
	offset := len(p.Vertices)
	out := &Part{
		Vertices: append(append([]Vec3(nil), p.Vertices...), o.Vertices...),
		Faces:    append([]Face(nil), p.Faces...),
	}
	for _, f := range o.Faces {
		out.Faces = append(out.Faces, Face{f[0] + offset, f[1] + offset, f[2] + offset})
	}
	out.recompute()
	return out
}

// Validate checks basic structural well-formedness: every face index is
// in range and no face is degenerate (zero area within tol).
func (p *Part) Validate(tol float64) error {
	n := len(p.Vertices)
	for i, f := range p.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= n {
				return fmt.Errorf("geom3d: face %d references out-of-range vertex %d", i, vi)
			}
		}
		if p.FaceArea(i) < tol {
			return fmt.Errorf("geom3d: face %d is degenerate (area below %g)", i, tol)
		}
	}
	return nil
}

// IsWatertight reports whether every edge in the mesh is shared by
// exactly two faces, a necessary (not sufficient) condition for a closed
// manifold surface.
func (p *Part) IsWatertight() bool {
	type edgeKey struct{ a, b int }
	counts := make(map[edgeKey]int)
	for _, f := range p.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			counts[edgeKey{a, b}]++
		}
	}
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}

// MaxSideDeviation returns the largest |n.Z| among faces considered
// "vertical" side walls, used to check the BlockSupport side-face
// invariant (|n.Z| < epsSide).
func (p *Part) MaxSideDeviation(isSide func(i int) bool) float64 {
	max := 0.0
	for i, n := range p.FaceNormal {
		if !isSide(i) {
			continue
		}
		if d := math.Abs(n.Z); d > max {
			max = d
		}
	}
	return max
}
