package skin

import (
	"math"

	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/types"
)

// arcMap is the "top loop's arc-length → world XY" lookup the re-wrap
// step uses to place every unrolled 2D vertex back in world space; Z is
// taken directly from the unrolled Y coordinate rather than
// from this map.
type arcMap struct {
	arcs []float64
	pts  []geom3d.Vec3 // world-space points, XY used, Z ignored on lookup
}

func buildArcMap(loop []geom3d.Vec3) arcMap {
	n := len(loop)
	arcs := make([]float64, n+1)
	for i := 0; i < n; i++ {
		next := loop[(i+1)%n]
		arcs[i+1] = arcs[i] + geom3d.Vec3{X: next.X - loop[i].X, Y: next.Y - loop[i].Y, Z: next.Z - loop[i].Z}.Length()
	}
	pts := append(append([]geom3d.Vec3(nil), loop...), loop[0])
	return arcMap{arcs: arcs, pts: pts}
}

func (m arcMap) total() float64 { return m.arcs[len(m.arcs)-1] }

// sampleXY linearly interpolates the world XY position at arc-length s,
// wrapping modulo the loop's total perimeter.
func (m arcMap) sampleXY(s float64) (x, y float64) {
	total := m.total()
	if total <= 0 {
		return m.pts[0].X, m.pts[0].Y
	}
	s = math.Mod(s, total)
	if s < 0 {
		s += total
	}
	for i := 0; i+1 < len(m.arcs); i++ {
		if s >= m.arcs[i] && s <= m.arcs[i+1] {
			span := m.arcs[i+1] - m.arcs[i]
			t := 0.0
			if span > 1e-12 {
				t = (s - m.arcs[i]) / span
			}
			a, b := m.pts[i], m.pts[i+1]
			return a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t
		}
	}
	last := m.pts[len(m.pts)-1]
	return last.X, last.Y
}

// ensureCW returns a reversed copy of loop if its XY projection winds
// counter-clockwise, and a plain copy otherwise; loop itself is left
// unchanged. Every unrolled strip thus uses one orientation convention.
func ensureCW(loop []geom3d.Vec3) []geom3d.Vec3 {
	pts := make([]types.Point, len(loop))
	for i, p := range loop {
		pts[i] = types.Point{X: p.X, Y: p.Y}
	}
	if polygon.IsCCW(pts) {
		out := make([]geom3d.Vec3, len(loop))
		for i, p := range loop {
			out[len(loop)-1-i] = p
		}
		return out
	}
	return append([]geom3d.Vec3(nil), loop...)
}

// rollToNearest rotates loop so its first element is the point nearest
// (in XY) to target, the "roll the bottom loop so its start minimizes
// 2D distance to the top start" step.
func rollToNearest(loop []geom3d.Vec3, target geom3d.Vec3) []geom3d.Vec3 {
	best, bestDist := 0, math.MaxFloat64
	for i, p := range loop {
		d := math.Hypot(p.X-target.X, p.Y-target.Y)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	out := make([]geom3d.Vec3, len(loop))
	for i := range loop {
		out[i] = loop[(best+i)%len(loop)]
	}
	return out
}

// cumulativeArc3D returns the running 3D arc length of each point in
// loop, loop[0]=0.
func cumulativeArc3D(loop []geom3d.Vec3) []float64 {
	out := make([]float64, len(loop))
	for i := 1; i < len(loop); i++ {
		d := loop[i].Sub(loop[i-1]).Length()
		out[i] = out[i-1] + d
	}
	return out
}

// unrolledOutline builds the rectangle-like (arc-length, z) polygon:
// top loop traversed forward, bottom loop traversed backward from its
// matched roll point, closing a simple strip.
// Returns the outline ring, the index where the bottom half begins (for
// tooth classification), and the top loop's arc map for re-wrapping.
func unrolledOutline(pair loopPair) (outline types.Ring, topCount int, amap arcMap) {
	top := ensureCW(pair.Top)
	bottom := ensureCW(pair.Bottom)
	bottom = rollToNearest(bottom, top[0])

	topArc := cumulativeArc3D(top)
	bottomArc := cumulativeArc3D(bottom)
	topTotal := topArc[len(topArc)-1] + top[len(top)-1].Sub(top[0]).Length()
	bottomTotal := bottomArc[len(bottomArc)-1] + bottom[len(bottom)-1].Sub(bottom[0]).Length()
	scale := 1.0
	if bottomTotal > 1e-9 {
		scale = topTotal / bottomTotal
	}

	for i, p := range top {
		outline = append(outline, types.Point{X: topArc[i], Y: p.Z})
	}
	topCount = len(outline)
	for i := len(bottom) - 1; i >= 0; i-- {
		outline = append(outline, types.Point{X: bottomArc[i] * scale, Y: bottom[i].Z})
	}

	amap = buildArcMap(top)
	return outline, topCount, amap
}
