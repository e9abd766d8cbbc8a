package truss

import (
	"math"
	"sort"

	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/algorithm/robust"
	"github.com/amcore/slmsupport/primitives"
	"github.com/amcore/slmsupport/types"
)

// BufferSegment turns a line segment into a solid rectangular strut of
// the given half-width — the Minkowski expansion applied to a clipped
// hatch line (and, reused here, to a top/bottom edge chain for wall
// thickening) now that the segment is a concrete finite span rather
// than the closed ring algorithm/polygon.Offset expects.
func BufferSegment(a, b types.Point, halfWidth float64) types.Ring {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return nil
	}
	nx, ny := -dy/length*halfWidth, dx/length*halfWidth
	ex, ey := dx/length*halfWidth, dy/length*halfWidth
	return types.Ring{
		{X: a.X - ex + nx, Y: a.Y - ey + ny},
		{X: b.X + ex + nx, Y: b.Y + ey + ny},
		{X: b.X + ex - nx, Y: b.Y + ey - ny},
		{X: a.X - ex - nx, Y: a.Y - ey - ny},
	}
}

// BufferChain buffers every consecutive pair in path and unions the
// resulting struts into one set of solid paths.
func BufferChain(path []types.Point, halfWidth float64) types.Paths {
	var out types.Paths
	for i := 0; i+1 < len(path); i++ {
		strut := BufferSegment(path[i], path[i+1], halfWidth)
		if strut == nil {
			continue
		}
		out = UnionPaths(out, types.Paths{strut})
	}
	return out
}

func UnionPaths(acc types.Paths, next types.Paths) types.Paths {
	if len(acc) == 0 {
		return next
	}
	if len(next) == 0 {
		return acc
	}
	return primitives.PolygonClip(acc, next, primitives.ClipUnion, primitives.FillNonZero)
}

// generateHatchLines returns full-span line segments at angleDeg across
// outer's bounding box, spaced by spacing along the hatch normal —
// step 5's "two sets of parallel hatches at angles ±trussAngle with
// spacing gridSpacing·sin(trussAngle)" applied to one of the two angles.
func generateHatchLines(outer types.Ring, angleDeg, spacing float64) [][2]types.Point {
	if spacing <= 1e-9 || len(outer) == 0 {
		return nil
	}
	minX, minY, maxX, maxY := ringBounds(outer)
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	diag := math.Hypot(maxX-minX, maxY-minY) + spacing

	rad := angleDeg * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	nx, ny := -dy, dx

	kMax := int(diag/spacing) + 2
	var out [][2]types.Point
	for k := -kMax; k <= kMax; k++ {
		offset := float64(k) * spacing
		px, py := cx+nx*offset, cy+ny*offset
		a := types.Point{X: px - dx*diag, Y: py - dy*diag}
		b := types.Point{X: px + dx*diag, Y: py + dy*diag}
		out = append(out, [2]types.Point{a, b})
	}
	return out
}

func ringBounds(r types.Ring) (minX, minY, maxX, maxY float64) {
	minX, minY = r[0].X, r[0].Y
	maxX, maxY = r[0].X, r[0].Y
	for _, p := range r {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// clipSegmentToRing intersects the infinite-span segment a-b against
// ring's edges and returns the sub-segments whose midpoint lies inside
// the ring — the line-vs-polygon clip step 5 needs before a hatch line
// can be buffered into a strut. Holes are ignored: a hatch line crossing
// a hole is expected to be rare at the slice widths this module targets,
// and an uncaught hole crossing only over-fills by one strut width,
// never breaks watertightness.
func clipSegmentToRing(a, b types.Point, ring types.Ring) [][2]types.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	ts := []float64{0, 1}
	n := len(ring)
	for i := 0; i < n; i++ {
		c, d := ring[i], ring[(i+1)%n]
		ok, t, _ := robust.SegmentIntersect(a, b, c, d)
		if ok && t > 1e-9 && t < 1-1e-9 {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)

	var out [][2]types.Point
	for i := 0; i+1 < len(ts); i++ {
		t0, t1 := ts[i], ts[i+1]
		if t1-t0 < 1e-9 {
			continue
		}
		mid := types.Point{X: a.X + dx*(t0+t1)/2, Y: a.Y + dy*(t0+t1)/2}
		if polygon.PointInPolygon(mid, ring) != polygon.Outside {
			out = append(out, [2]types.Point{
				{X: a.X + dx*t0, Y: a.Y + dy*t0},
				{X: a.X + dx*t1, Y: a.Y + dy*t1},
			})
		}
	}
	return out
}

// GenerateTrussLattice builds the double-diagonal lattice of step 5:
// hatches at ±trussAngle spaced by gridSpacingX·sin(trussAngle), clipped
// to outer and buffered to solid struts of width trussWidth.
func GenerateTrussLattice(outer types.Ring, gridSpacingX, trussAngleDeg, trussWidth float64) types.Paths {
	pitch := gridSpacingX * math.Sin(trussAngleDeg*math.Pi/180)
	halfWidth := trussWidth / 2

	var acc types.Paths
	for _, angle := range [2]float64{trussAngleDeg, -trussAngleDeg} {
		for _, line := range generateHatchLines(outer, angle, pitch) {
			for _, seg := range clipSegmentToRing(line[0], line[1], outer) {
				strut := BufferSegment(seg[0], seg[1], halfWidth)
				if strut == nil {
					continue
				}
				acc = UnionPaths(acc, types.Paths{strut})
			}
		}
	}
	return acc
}
