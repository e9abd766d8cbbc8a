package primitives

import (
	"github.com/amcore/slmsupport/algorithm/polygon"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/types"
)

// FlattenSupportRegion projects patch's boundary to the Z=0 plane and
// extracts it as a (possibly with-holes) 2D polygon. The boundary walk
// picks one outer loop by largest absolute area and treats the rest as
// holes.
func FlattenSupportRegion(patch *geom3d.Part) (types.Polygon, error) {
	loops, err := geom3d.BoundaryLoops(patch)
	if err != nil {
		return types.Polygon{}, ErrDegenerateOutline
	}
	if len(loops) == 0 {
		return types.Polygon{}, ErrDegenerateOutline
	}

	rings := make([]types.Ring, len(loops))
	for i, loop := range loops {
		ring := make(types.Ring, len(loop))
		for j, vi := range loop {
			v := patch.Vertices[vi]
			ring[j] = types.Point{X: v.X, Y: v.Y}
		}
		rings[i] = ring
	}

	bestIdx := 0
	bestArea := 0.0
	for i, r := range rings {
		a := polygon.SignedArea(r)
		if absF(a) > bestArea {
			bestArea = absF(a)
			bestIdx = i
		}
	}

	out := types.Polygon{Outer: polygon.ReverseIfNeeded(rings[bestIdx], true)}
	for i, r := range rings {
		if i == bestIdx {
			continue
		}
		out.Holes = append(out.Holes, polygon.ReverseIfNeeded(r, false))
	}
	return out, nil
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
