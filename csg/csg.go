package csg

import (
	"fmt"
	"math"

	"github.com/amcore/slmsupport/geom3d"
)

// Native is the default CSGBackend: a from-scratch BSP-tree Boolean
// engine over triangle meshes, following the classic plane-splitting
// algorithm (build a tree per operand, clip each against the other,
// flip as needed for the requested operation, merge).
type Native struct{}

// Intersect returns the volume common to both a and b.
func (Native) Intersect(a, b *geom3d.Part) (*geom3d.Part, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	na := buildTree(fromPart(a))
	nb := buildTree(fromPart(b))

	na.invert()
	nb.clipTo(na)
	nb.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	na.build(nb.allPolygons())
	na.invert()

	result := toPart(na.allPolygons())
	return resultOrFail(result)
}

// Difference returns a with the volume of b removed.
func (Native) Difference(a, b *geom3d.Part) (*geom3d.Part, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	na := buildTree(fromPart(a))
	nb := buildTree(fromPart(b))

	na.invert()
	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())
	na.invert()

	result := toPart(na.allPolygons())
	return resultOrFail(result)
}

// Union returns the combined volume of a and b. Needed internally for
// MergeMesh and exposed since it is the third leg of any Boolean kernel.
func (Native) Union(a, b *geom3d.Part) (*geom3d.Part, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	na := buildTree(fromPart(a))
	nb := buildTree(fromPart(b))

	na.clipTo(nb)
	nb.clipTo(na)
	nb.invert()
	nb.clipTo(na)
	nb.invert()
	na.build(nb.allPolygons())

	result := toPart(na.allPolygons())
	return resultOrFail(result)
}

// ResolveSelfIntersections repairs a mesh that may be non-manifold after
// a chain of Boolean operations: duplicate/degenerate faces are dropped
// and coincident vertices are welded. This is deliberately conservative
// (it does not attempt general self-intersection splitting) — it applies
// an "always pass CSG output through a repair pass" policy, not a full
// robust mesh-repair library.
func (Native) ResolveSelfIntersections(m *geom3d.Part) (*geom3d.Part, error) {
	if m == nil {
		return nil, fmt.Errorf("csg: nil mesh")
	}
	welded := weldVertices(m, 1e-7)
	return dropDegenerateFaces(welded, 1e-10), nil
}

func checkOperands(a, b *geom3d.Part) error {
	if a == nil || b == nil {
		return fmt.Errorf("csg: nil operand")
	}
	if len(a.Faces) == 0 || len(b.Faces) == 0 {
		return fmt.Errorf("csg: empty operand mesh")
	}
	return nil
}

func resultOrFail(m *geom3d.Part) (*geom3d.Part, error) {
	if m == nil || len(m.Faces) == 0 {
		return m, nil
	}
	return m, nil
}

func weldVertices(m *geom3d.Part, tol float64) *geom3d.Part {
	type cell = [3]int64
	cellOf := func(v geom3d.Vec3) cell {
		return cell{
			int64(math.Round(v.X / tol)),
			int64(math.Round(v.Y / tol)),
			int64(math.Round(v.Z / tol)),
		}
	}

	remap := make([]int, len(m.Vertices))
	index := make(map[cell]int)
	var newVerts []geom3d.Vec3
	for i, v := range m.Vertices {
		c := cellOf(v)
		if id, ok := index[c]; ok {
			remap[i] = id
			continue
		}
		id := len(newVerts)
		newVerts = append(newVerts, v)
		index[c] = id
		remap[i] = id
	}

	newFaces := make([]geom3d.Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		newFaces = append(newFaces, geom3d.Face{remap[f[0]], remap[f[1]], remap[f[2]]})
	}
	return geom3d.NewPart(newVerts, newFaces)
}

func dropDegenerateFaces(m *geom3d.Part, areaTol float64) *geom3d.Part {
	seen := make(map[geom3d.Face]bool)
	faces := make([]geom3d.Face, 0, len(m.Faces))
	for i, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		if m.FaceArea(i) < areaTol {
			continue
		}
		key := canonicalFace(f)
		if seen[key] {
			continue
		}
		seen[key] = true
		faces = append(faces, f)
	}
	return geom3d.NewPart(m.Vertices, faces)
}

func canonicalFace(f geom3d.Face) geom3d.Face {
	// Rotate so the smallest index comes first; winding is preserved.
	min := 0
	for i := 1; i < 3; i++ {
		if f[i] < f[min] {
			min = i
		}
	}
	return geom3d.Face{f[min], f[(min+1)%3], f[(min+2)%3]}
}
