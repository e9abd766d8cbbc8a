package polygon

import (
	"math"

	"github.com/amcore/slmsupport/types"
)

// JoinType selects how offset edges are connected at convex corners,
// mirroring the join styles a Clipper-style polygon engine exposes.
type JoinType int

const (
	JoinMiter JoinType = iota
	JoinRound
	JoinSquare
)

// EndType names the end-cap styles of a Clipper-style engine. Offset
// treats every input as a closed ring and does not read its EndType
// argument; paths with fewer than three points are dropped rather than
// offset as open paths.
type EndType int

const (
	EndClosedPolygon EndType = iota
	EndOpenButt
	EndOpenRound
	EndOpenSquare
)

const roundSegmentsPerQuarter = 6

// Offset grows (delta>0) or shrinks (delta<0) each path by delta units,
// the Minkowski expansion/contraction used for outerSupportEdgeGap /
// innerSupportEdgeGap / trussWidth/2 / supportWallThickness.
//
// Each input ring is treated as closed; the algorithm offsets every edge
// outward along its normal by delta and joins consecutive offset edges
// according to joinType, which is the same per-edge-then-join approach a
// production polygon-offsetting engine uses, simplified to operate
// directly on float64 coordinates rather than an internally integer-
// scaled coordinate system (this module has no fixed-point requirement
// since callers already work in millimeters).
func Offset(paths types.Paths, delta float64, joinType JoinType, endType EndType) types.Paths {
	if delta == 0 {
		return clonePaths(paths)
	}

	out := make(types.Paths, 0, len(paths))
	for _, ring := range paths {
		if len(ring) < 3 {
			continue
		}
		offsetRing := offsetClosedRing(ring, delta, joinType)
		if len(offsetRing) >= 3 {
			out = append(out, offsetRing)
		}
	}
	return out
}

func clonePaths(paths types.Paths) types.Paths {
	out := make(types.Paths, len(paths))
	for i, r := range paths {
		out[i] = r.Clone()
	}
	return out
}

func offsetClosedRing(ring types.Ring, delta float64, join JoinType) types.Ring {
	n := len(ring)
	ccw := IsCCW(ring)

	edgeNormal := func(i int) types.Point {
		a := ring[i]
		b := ring[(i+1)%n]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := math.Hypot(dx, dy)
		if length < 1e-12 {
			return types.Point{}
		}
		// Right-hand normal for a CCW ring points outward.
		nx, ny := dy/length, -dx/length
		if !ccw {
			nx, ny = -nx, -ny
		}
		return types.Point{X: nx, Y: ny}
	}

	var out types.Ring
	for i := 0; i < n; i++ {
		prevIdx := (i - 1 + n) % n
		nPrev := edgeNormal(prevIdx)
		nCur := edgeNormal(i)
		v := ring[i]

		a := types.Point{X: v.X + nPrev.X*delta, Y: v.Y + nPrev.Y*delta}
		b := types.Point{X: v.X + nCur.X*delta, Y: v.Y + nCur.Y*delta}

		cross := nPrev.X*nCur.Y - nPrev.Y*nCur.X
		if !ccw {
			cross = -cross
		}
		dot := nPrev.X*nCur.X + nPrev.Y*nCur.Y
		convex := delta > 0 && cross > 1e-9 || delta < 0 && cross < -1e-9
		dirPrev := types.Point{X: -nPrev.Y, Y: nPrev.X}
		dirCur := types.Point{X: -nCur.Y, Y: nCur.X}

		if !convex || dot > 1-1e-9 {
			if p, ok := lineIntersect(a, dirPrev, b, dirCur); ok && !convex {
				out = append(out, p)
			} else {
				out = append(out, a, b)
			}
			continue
		}

		switch join {
		case JoinRound:
			out = append(out, arcBetween(v, a, b, delta)...)
		case JoinSquare:
			mid := types.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
			bevel := math.Hypot(mid.X-v.X, mid.Y-v.Y)
			if bevel < 1e-12 {
				out = append(out, a, b)
			} else {
				scale := (math.Abs(delta)) / bevel
				sq := types.Point{
					X: v.X + (mid.X-v.X)*scale,
					Y: v.Y + (mid.Y-v.Y)*scale,
				}
				out = append(out, a, sq, b)
			}
		default: // JoinMiter
			miter, ok := lineIntersect(a, dirPrev, b, dirCur)
			if ok && math.Hypot(miter.X-v.X, miter.Y-v.Y) < math.Abs(delta)*4 {
				out = append(out, a, miter, b)
			} else {
				out = append(out, a, b)
			}
		}
	}
	return out
}

func arcBetween(center, a, b types.Point, radius float64) types.Ring {
	a1 := math.Atan2(a.Y-center.Y, a.X-center.X)
	a2 := math.Atan2(b.Y-center.Y, b.X-center.X)
	for a2 < a1 {
		a2 += 2 * math.Pi
	}
	steps := int(math.Max(1, float64(roundSegmentsPerQuarter)*(a2-a1)/(math.Pi/2)))

	out := make(types.Ring, 0, steps+1)
	out = append(out, a)
	for i := 1; i < steps; i++ {
		t := a1 + (a2-a1)*float64(i)/float64(steps)
		out = append(out, types.Point{
			X: center.X + math.Abs(radius)*math.Cos(t),
			Y: center.Y + math.Abs(radius)*math.Sin(t),
		})
	}
	out = append(out, b)
	return out
}

// lineIntersect finds where the line through a in direction dirA meets
// the line through b in direction dirB.
func lineIntersect(a, dirA, b, dirB types.Point) (types.Point, bool) {
	denom := dirA.X*dirB.Y - dirA.Y*dirB.X
	if math.Abs(denom) < 1e-12 {
		return types.Point{}, false
	}
	t := ((b.X-a.X)*dirB.Y - (b.Y-a.Y)*dirB.X) / denom
	return types.Point{X: a.X + dirA.X*t, Y: a.Y + dirA.Y*t}, true
}
