package csg

import "github.com/amcore/slmsupport/geom3d"

// vertex is a polygon corner carrying the interpolated position and normal
// CSG boundary operations need when cutting new edges.
type vertex struct {
	pos    geom3d.Vec3
	normal geom3d.Vec3
}

func (v vertex) clone() vertex { return v }

func (v vertex) lerp(o vertex, t float64) vertex {
	return vertex{
		pos:    v.pos.Lerp(o.pos, t),
		normal: v.normal.Lerp(o.normal, t).Normalize(),
	}
}

func (v vertex) flip() vertex {
	return vertex{pos: v.pos, normal: v.normal.Scale(-1)}
}

// polygon is a (possibly non-triangular, always convex-by-construction)
// coplanar face, the BSP tree's working unit. Meshes are fanned into
// triangular polygons on the way in and fanned back out on the way out.
type polygon struct {
	verts []vertex
	plane plane
}

func newPolygon(verts []vertex) *polygon {
	p := &polygon{verts: verts}
	if len(verts) >= 3 {
		if pl, ok := planeFromPoints(verts[0].pos, verts[1].pos, verts[2].pos); ok {
			p.plane = pl
		}
	}
	return p
}

func (p *polygon) flip() *polygon {
	n := len(p.verts)
	out := make([]vertex, n)
	for i, v := range p.verts {
		out[n-1-i] = v.flip()
	}
	return &polygon{verts: out, plane: p.plane.flip()}
}

func (p *polygon) clone() *polygon {
	out := make([]vertex, len(p.verts))
	copy(out, p.verts)
	return &polygon{verts: out, plane: p.plane}
}

// fromPart converts a Part's triangles into BSP polygons.
func fromPart(m *geom3d.Part) []*polygon {
	polys := make([]*polygon, 0, len(m.Faces))
	for fi, f := range m.Faces {
		n := m.FaceNormal[fi]
		verts := make([]vertex, 3)
		for i, vi := range f {
			verts[i] = vertex{pos: m.Vertices[vi], normal: n}
		}
		poly := newPolygon(verts)
		if len(poly.verts) == 3 {
			polys = append(polys, poly)
		}
	}
	return polys
}

// toPart fan-triangulates each polygon and assembles a Part. Resulting
// BSP polygons are convex by construction (clipped convex inputs stay
// convex), so triangle-fan decomposition is exact, not an approximation.
func toPart(polys []*polygon) *geom3d.Part {
	var verts []geom3d.Vec3
	var faces []geom3d.Face
	for _, poly := range polys {
		if len(poly.verts) < 3 {
			continue
		}
		base := len(verts)
		for _, v := range poly.verts {
			verts = append(verts, v.pos)
		}
		for i := 1; i < len(poly.verts)-1; i++ {
			faces = append(faces, geom3d.Face{base, base + i, base + i + 1})
		}
	}
	return geom3d.NewPart(verts, faces)
}
