package skin

import (
	"math"

	"github.com/amcore/slmsupport/geom3d"
)

// loopPair is one matched top/bottom boundary-curve pair, ready for
// unrolling.
type loopPair struct {
	Top    []geom3d.Vec3
	Bottom []geom3d.Vec3
}

// loopLength2D returns a loop's closed-path length projected onto XY —
// the metric the pairing ratio test compares.
func loopLength2D(loop []geom3d.Vec3) float64 {
	total := 0.0
	n := len(loop)
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		total += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return total
}

// pairLoops greedily matches each top loop to the bottom loop whose 2D
// projected length is closest, keeping the pair only if it passes
// the ratio test |Ltop-Lbottom|/Lbottom < tol. Unmatched loops are
// dropped silently rather than forced into a bad pairing.
func pairLoops(top, bottom [][]geom3d.Vec3, tol float64) []loopPair {
	used := make([]bool, len(bottom))
	var pairs []loopPair
	for _, t := range top {
		lt := loopLength2D(t)
		best, bestDiff := -1, math.MaxFloat64
		for j, b := range bottom {
			if used[j] {
				continue
			}
			lb := loopLength2D(b)
			if lb < 1e-9 {
				continue
			}
			diff := math.Abs(lt-lb) / lb
			if diff < bestDiff {
				bestDiff = diff
				best = j
			}
		}
		if best >= 0 && bestDiff < tol {
			used[best] = true
			pairs = append(pairs, loopPair{Top: t, Bottom: bottom[best]})
		}
	}
	return pairs
}
