package primitives

import (
	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/types"
)

// ExtrudePolygon prismatically extrudes poly from Z=0 to Z=height,
// producing top and bottom caps (fan-triangulated from the outer
// ring's first vertex, with holes cut as interior loops walked in reverse)
// and a side wall of quads split into triangles, one quad per outer and
// hole edge. height may be negative, which flips which cap is "top."
func ExtrudePolygon(poly types.Polygon, height float64) *geom3d.Part {
	outer := polygon.ReverseIfNeeded(poly.Outer, true)

	var verts []geom3d.Vec3
	var faces []geom3d.Face

	bottomStart := 0
	for _, p := range outer {
		verts = append(verts, geom3d.Vec3{X: p.X, Y: p.Y, Z: 0})
	}
	topStart := len(verts)
	for _, p := range outer {
		verts = append(verts, geom3d.Vec3{X: p.X, Y: p.Y, Z: height})
	}

	n := len(outer)
	faces = append(faces, fanTriangulate(bottomStart, n, true)...)
	faces = append(faces, fanTriangulate(topStart, n, false)...)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		b0, b1 := bottomStart+i, bottomStart+j
		t0, t1 := topStart+i, topStart+j
		faces = append(faces, geom3d.Face{b0, b1, t1}, geom3d.Face{b0, t1, t0})
	}

	for _, hole := range poly.Holes {
		h := polygon.ReverseIfNeeded(hole, false)
		hBottomStart := len(verts)
		for _, p := range h {
			verts = append(verts, geom3d.Vec3{X: p.X, Y: p.Y, Z: 0})
		}
		hTopStart := len(verts)
		for _, p := range h {
			verts = append(verts, geom3d.Vec3{X: p.X, Y: p.Y, Z: height})
		}
		hn := len(h)
		for i := 0; i < hn; i++ {
			j := (i + 1) % hn
			b0, b1 := hBottomStart+i, hBottomStart+j
			t0, t1 := hTopStart+i, hTopStart+j
			faces = append(faces, geom3d.Face{b1, b0, t0}, geom3d.Face{b1, t0, t1})
		}
	}

	return geom3d.NewPart(verts, faces)
}

func fanTriangulate(start, n int, flip bool) []geom3d.Face {
	out := make([]geom3d.Face, 0, n-2)
	for i := 1; i < n-1; i++ {
		if flip {
			out = append(out, geom3d.Face{start, start + i + 1, start + i})
		} else {
			out = append(out, geom3d.Face{start, start + i, start + i + 1})
		}
	}
	return out
}
