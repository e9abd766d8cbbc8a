package skin

import (
	"math"

	"github.com/amcore/slmsupport/types"
)

// resampleSpacing is the fixed 0.25mm pitch the infill step resamples
// the unrolled boundary at, independent of any tunable parameter.
const resampleSpacing = 0.25

// resampleRing inserts evenly spaced points along each edge of ring so
// no segment exceeds spacing, giving the truss-clip step enough boundary
// resolution to follow the unrolled outline closely.
func resampleRing(ring types.Ring, spacing float64) types.Ring {
	if spacing <= 1e-9 || len(ring) < 2 {
		return ring
	}
	out := make(types.Ring, 0, len(ring))
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		out = append(out, a)
		d := math.Hypot(b.X-a.X, b.Y-a.Y)
		steps := int(math.Ceil(d / spacing))
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			out = append(out, types.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
		}
	}
	return out
}
