package polygon

import (
	"sort"

	"github.com/amcore/slmsupport/algorithm/robust"
	"github.com/amcore/slmsupport/types"
)

// ClipOp selects the Boolean operation Clip performs.
type ClipOp int

const (
	ClipIntersection ClipOp = iota
	ClipUnion
	ClipDifference
)

// FillRule selects how self-overlapping or nested rings resolve interior
// vs. exterior, matching the NonZero/EvenOdd choice a Clipper-style
// engine exposes.
type FillRule int

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// clipVertex is one node of a Greiner-Hormann doubly linked polygon,
// possibly an inserted intersection point.
type clipVertex struct {
	p            types.Point
	next, prev   *clipVertex
	neighbor     *clipVertex // the paired node in the other polygon, if this is an intersection
	intersection bool
	entry        bool
	alpha        float64 // parametric position along the original edge, for sorting
	visited      bool
}

// Clip performs a polygon Boolean between subjects and clips using the
// Greiner-Hormann algorithm: subject and clip rings are walked pairwise,
// intersections are inserted into both as linked-list nodes, each
// intersection is flagged entry/exit by a local containment test, and
// the result is traced by following subject links at exits and clip
// links at entries (or the complementary rule for union/difference).
//
// This implementation is deliberately scoped to the case this pipeline
// actually needs: non-self-intersecting subject/clip rings with a
// manageable number of proper crossings (truss hatches against a block
// cross-section, wall half-planes against a slice polygon, border rings
// against their offset). Crossings that fall within 1e-9 of either
// edge's end (tangencies, vertex touches) are not inserted. Each subject
// ring is clipped against each clip ring separately and the pieces are
// concatenated; rule is not consulted, so FillNonZero and FillEvenOdd
// give the same result.
func Clip(subjects, clips types.Paths, op ClipOp, rule FillRule) types.Paths {
	if len(subjects) == 0 {
		if op == ClipUnion {
			return clonePaths(clips)
		}
		return nil
	}
	if len(clips) == 0 {
		switch op {
		case ClipUnion:
			return clonePaths(subjects)
		case ClipDifference:
			return clonePaths(subjects)
		default:
			return nil
		}
	}

	var result types.Paths
	for _, s := range subjects {
		for _, c := range clips {
			result = append(result, clipPair(s, c, op, rule)...)
		}
	}
	if len(result) == 0 {
		return fallbackContainment(subjects, clips, op)
	}
	return result
}

// clipPair clips a single subject ring against a single clip ring.
func clipPair(subject, clip types.Ring, op ClipOp, rule FillRule) types.Paths {
	sList := buildLinkedRing(subject)
	cList := buildLinkedRing(clip)

	crossings := insertIntersections(sList, cList)
	if crossings == 0 {
		return fallbackContainment(types.Paths{subject}, types.Paths{clip}, op)
	}

	// Re-collect both rings from their linked lists so the spliced
	// intersection nodes are visited by marking and tracing.
	for _, list := range []*[]*clipVertex{&sList, &cList} {
		start := (*list)[0]
		all := []*clipVertex{start}
		for n := start.next; n != start; n = n.next {
			all = append(all, n)
		}
		*list = all
	}

	markEntryExit(sList, clip, op == ClipDifference || op == ClipUnion, false)
	markEntryExit(cList, subject, op == ClipUnion, op == ClipDifference)

	return traceResults(sList, op)
}

func buildLinkedRing(ring types.Ring) []*clipVertex {
	n := len(ring)
	nodes := make([]*clipVertex, n)
	for i, p := range ring {
		nodes[i] = &clipVertex{p: p}
	}
	for i := 0; i < n; i++ {
		nodes[i].next = nodes[(i+1)%n]
		nodes[i].prev = nodes[(i-1+n)%n]
	}
	return nodes
}

// insertIntersections finds every proper crossing between the two rings
// and splices a paired intersection node into both linked lists at the
// correct parametric position. Returns the number of crossings found.
type ringInsertion struct {
	node  *clipVertex
	alpha float64
}

func insertIntersections(sNodes, cNodes []*clipVertex) int {
	sIns := make(map[*clipVertex][]ringInsertion)
	cIns := make(map[*clipVertex][]ringInsertion)
	count := 0

	sEdges := ringEdges(sNodes)
	cEdges := ringEdges(cNodes)

	for _, se := range sEdges {
		for _, ce := range cEdges {
			ok, t, u := robust.SegmentIntersect(se.a.p, se.b.p, ce.a.p, ce.b.p)
			if !ok || t <= 1e-9 || t >= 1-1e-9 || u <= 1e-9 || u >= 1-1e-9 {
				continue
			}
			pt := types.Point{
				X: se.a.p.X + (se.b.p.X-se.a.p.X)*t,
				Y: se.a.p.Y + (se.b.p.Y-se.a.p.Y)*t,
			}
			sNode := &clipVertex{p: pt, intersection: true, alpha: t}
			cNode := &clipVertex{p: pt, intersection: true, alpha: u}
			sNode.neighbor = cNode
			cNode.neighbor = sNode
			sIns[se.a] = append(sIns[se.a], ringInsertion{sNode, t})
			cIns[ce.a] = append(cIns[ce.a], ringInsertion{cNode, u})
			count++
		}
	}

	for start, items := range sIns {
		spliceInsertions(start, items)
	}
	for start, items := range cIns {
		spliceInsertions(start, items)
	}
	return count
}

type ringEdge struct{ a, b *clipVertex }

func ringEdges(nodes []*clipVertex) []ringEdge {
	out := make([]ringEdge, len(nodes))
	for i, n := range nodes {
		out[i] = ringEdge{n, n.next}
	}
	return out
}

// spliceInsertions orders the intersection nodes found along the edge
// starting at `start` by their parametric position and splices them into
// the ring between start and its original successor.
func spliceInsertions(start *clipVertex, items []ringInsertion) {
	sort.Slice(items, func(i, j int) bool { return items[i].alpha < items[j].alpha })

	cur := start
	end := start.next
	for _, it := range items {
		node := it.node
		node.prev = cur
		node.next = end
		cur.next = node
		end.prev = node
		cur = node
	}
}

func fallbackContainment(subjects, clips types.Paths, op ClipOp) types.Paths {
	switch op {
	case ClipUnion:
		var out types.Paths
		out = append(out, clonePaths(subjects)...)
		out = append(out, clonePaths(clips)...)
		return out
	case ClipDifference:
		var out types.Paths
		for _, s := range subjects {
			covered := false
			for _, c := range clips {
				if ringFullyInside(s, c) {
					covered = true
					break
				}
			}
			if !covered {
				out = append(out, s.Clone())
			}
		}
		return out
	default: // intersection
		var out types.Paths
		for _, s := range subjects {
			for _, c := range clips {
				if ringFullyInside(s, c) {
					out = append(out, s.Clone())
				} else if ringFullyInside(c, s) {
					out = append(out, c.Clone())
				}
			}
		}
		return out
	}
}

func ringFullyInside(inner, outer types.Ring) bool {
	for _, p := range inner {
		if PointInPolygon(p, outer) == Outside {
			return false
		}
	}
	return true
}

// markEntryExit tags each intersection node in nodes as an entry or exit
// point with respect to otherRing, alternating along the ring starting
// from whichever parity makes the first intersection consistent with
// its true containment status.
func markEntryExit(nodes []*clipVertex, otherRing types.Ring, invertStart, invertAll bool) {
	// Determine the very first node's point containment to seed parity.
	var first *clipVertex
	for _, n := range nodes {
		if n.intersection {
			first = n
			break
		}
	}
	if first == nil {
		return
	}

	status := PointInPolygon(midpointAfter(first), otherRing) == Inside
	if invertStart {
		status = !status
	}

	n := first
	for {
		if n.intersection {
			entry := !status
			if invertAll {
				entry = !entry
			}
			n.entry = entry
			status = !status
		}
		n = nextDistinctOriginal(n)
		if n == first {
			break
		}
	}
}

// midpointAfter returns a point just beyond n along the ring, used to
// probe containment for parity seeding.
func midpointAfter(n *clipVertex) types.Point {
	nxt := n.next
	return types.Point{X: (n.p.X + nxt.p.X) / 2, Y: (n.p.Y + nxt.p.Y) / 2}
}

// nextDistinctOriginal walks forward through the linked list, used only
// to traverse every inserted node exactly once during entry/exit marking.
func nextDistinctOriginal(n *clipVertex) *clipVertex {
	return n.next
}

// traceResults walks the augmented subject ring, switching lists at each
// intersection per the standard Greiner-Hormann tracing rule, and emits
// one output ring per unvisited intersection start.
func traceResults(sNodes []*clipVertex, op ClipOp) types.Paths {
	var out types.Paths
	for _, start := range sNodes {
		if !start.intersection || start.visited {
			continue
		}

		var ring types.Ring
		cur := start
		forward := true
		for {
			if cur.visited && cur.intersection {
				break
			}
			ring = append(ring, cur.p)
			if cur.intersection {
				cur.visited = true
				if cur.neighbor != nil {
					cur.neighbor.visited = true
				}
				if cur.entry {
					forward = true
				} else {
					forward = false
				}
				if op == ClipDifference {
					forward = !forward
				}
				cur = cur.neighbor
			}
			if forward {
				cur = cur.next
			} else {
				cur = cur.prev
			}
			if cur == start {
				break
			}
		}
		if len(ring) >= 3 {
			out = append(out, ring)
		}
	}
	return out
}

// SortExteriorInterior classifies a PolyTree's flattened rings into
// outer (exterior) loops and holes by signed-area orientation alone:
// counter-clockwise rings are exteriors, all others are interiors.
// Containment between rings is not checked.
func SortExteriorInterior(paths types.Paths) (exteriors, interiors types.Paths) {
	for _, r := range paths {
		if IsCCW(r) {
			exteriors = append(exteriors, r)
		} else {
			interiors = append(interiors, r)
		}
	}
	return exteriors, interiors
}
