package primitives

import (
	"context"
	"fmt"
	"sort"

	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/types"
)

// Section is one planar cross-section of a Part: a 2D polygon in the
// section's local coordinate frame, plus the Transform mapping that
// local frame back to world space (origin + x*xAxis + y*yAxis, the
// section plane's normal implied by the basis).
type Section struct {
	Height  float64
	Polygon types.Polygon
	Local   geom3d.Transform
}

// SectionMultiplane slices p with planes through origin+height*normal
// for each height in heights, returning one Section per height that
// intersects the mesh, ordered by height ascending. Each section carries
// the local-to-world Transform truss.GenerateSlices needs to place its
// 2D lattice work back in world space.
//
// Any non-zero normal is accepted; the truss generator uses X- and Y-
// slices through a block's bounding-box center.
func SectionMultiplane(ctx context.Context, p *geom3d.Part, origin, normal geom3d.Vec3, heights []float64) ([]Section, error) {
	xAxis, yAxis, zAxis, err := basisFor(normal)
	if err != nil {
		return nil, err
	}

	sorted := append([]float64(nil), heights...)
	sort.Float64s(sorted)

	var out []Section
	for _, h := range sorted {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		planeOrigin := origin.Add(zAxis.Scale(h))
		rings := sliceAtPlane(p, planeOrigin, zAxis, xAxis, yAxis)
		if len(rings) == 0 {
			continue
		}
		out = append(out, Section{
			Height:  h,
			Polygon: ringsToPolygon(rings),
			Local:   geom3d.NewTransform(planeOrigin, xAxis, yAxis, zAxis),
		})
	}
	return out, nil
}

func basisFor(normal geom3d.Vec3) (x, y, z geom3d.Vec3, err error) {
	z = normal.Normalize()
	if z.Length() < 1e-9 {
		return x, y, z, fmt.Errorf("primitives: degenerate section normal")
	}
	ref := geom3d.Vec3{X: 1}
	if absF(z.Dot(ref)) > 0.9 {
		ref = geom3d.Vec3{Y: 1}
	}
	x = ref.Sub(z.Scale(z.Dot(ref))).Normalize()
	y = z.Cross(x)
	return x, y, z, nil
}

// sliceAtPlane intersects every face of p against the plane through
// planeOrigin with normal zAxis, chaining the resulting segments into
// closed loops in the (xAxis,yAxis) local frame.
func sliceAtPlane(p *geom3d.Part, planeOrigin, zAxis, xAxis, yAxis geom3d.Vec3) [][]types.Point {
	type segment struct{ a, b types.Point }
	var segs []segment

	signedDist := func(v geom3d.Vec3) float64 {
		return v.Sub(planeOrigin).Dot(zAxis)
	}
	project := func(v geom3d.Vec3) types.Point {
		rel := v.Sub(planeOrigin)
		return types.Point{X: rel.Dot(xAxis), Y: rel.Dot(yAxis)}
	}

	for _, f := range p.Faces {
		a, b, c := p.Vertices[f[0]], p.Vertices[f[1]], p.Vertices[f[2]]
		da, db, dc := signedDist(a), signedDist(b), signedDist(c)
		pts := edgeCrossings(a, b, da, db, project)
		pts = append(pts, edgeCrossings(b, c, db, dc, project)...)
		pts = append(pts, edgeCrossings(c, a, dc, da, project)...)
		if len(pts) == 2 {
			segs = append(segs, segment{pts[0], pts[1]})
		}
	}

	return chainSegments(segs)
}

func edgeCrossings(a, b geom3d.Vec3, da, db float64, project func(geom3d.Vec3) types.Point) []types.Point {
	if (da > 0 && db > 0) || (da < 0 && db < 0) || (da == 0 && db == 0) {
		return nil
	}
	if da == 0 {
		return []types.Point{project(a)}
	}
	if db == 0 {
		return []types.Point{project(b)}
	}
	t := da / (da - db)
	p := geom3d.Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
	return []types.Point{project(p)}
}

// chainSegments walks the per-face intersection segments into closed
// loops. A plane slicing a watertight mesh produces segments whose
// snapped endpoints have degree exactly 2 (each loop vertex is the
// shared endpoint of two segments) — the same assumption geom3d.BoundaryLoops
// makes for boundary-edge walking, applied here to intersection segments.
func chainSegments(segs []struct{ a, b types.Point }) [][]types.Point {
	const snap = 1e-6
	key := func(p types.Point) types.Point {
		round := func(v float64) float64 { return float64(int64(v/snap+0.5)) * snap }
		return types.Point{X: round(p.X), Y: round(p.Y)}
	}

	adj := make(map[types.Point][]types.Point)
	for _, s := range segs {
		ka, kb := key(s.a), key(s.b)
		if ka == kb {
			continue
		}
		adj[ka] = append(adj[ka], kb)
		adj[kb] = append(adj[kb], ka)
	}
	for p, ns := range adj {
		if len(ns) != 2 {
			delete(adj, p) // tangential/degenerate crossing, drop from the walk
		}
	}

	visited := make(map[types.Point]bool)
	var loops [][]types.Point
	for start := range adj {
		if visited[start] {
			continue
		}
		loop := []types.Point{start}
		visited[start] = true
		prev := types.Point{X: start.X + 1e9, Y: start.Y + 1e9} // unmatched sentinel
		cur := start
		for {
			ns, ok := adj[cur]
			if !ok {
				break
			}
			next := ns[0]
			if next == prev && len(ns) > 1 {
				next = ns[1]
			}
			if next == start {
				break
			}
			if visited[next] {
				break
			}
			loop = append(loop, next)
			visited[next] = true
			prev, cur = cur, next
		}
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

func ringsToPolygon(rings [][]types.Point) types.Polygon {
	var out types.Polygon
	bestIdx, bestArea := -1, 0.0
	converted := make([]types.Ring, len(rings))
	for i, r := range rings {
		converted[i] = r
		a := absF(signedAreaOf(r))
		if a > bestArea {
			bestArea = a
			bestIdx = i
		}
	}
	for i, r := range converted {
		if i == bestIdx {
			out.Outer = r
		} else {
			out.Holes = append(out.Holes, r)
		}
	}
	return out
}

func signedAreaOf(poly []types.Point) float64 {
	area := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}
