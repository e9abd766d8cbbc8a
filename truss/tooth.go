package truss

import (
	"math"

	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/types"
)

// ToothProfile2D returns the five-vertex tooth stamp in its own local
// (along-edge, height) frame:
//
//	(0,0), ((c-b)/2,a), ((c-b)/2+b,a), (c,0), (c+d,0)
//
// shifted in height by -a+upperPenetration so the flat top penetrates
// the adjoining surface by upperPenetration.
func ToothProfile2D(t coreconfig.ToothProfile, upperPenetration float64) [][2]float64 {
	shift := -t.A + upperPenetration
	return [][2]float64{
		{0, 0 + shift},
		{(t.C - t.B) / 2, t.A + shift},
		{(t.C-t.B)/2 + t.B, t.A + shift},
		{t.C, 0 + shift},
		{t.C + t.D, 0 + shift},
	}
}

// StampToothedEdge replaces the straight edge a->b with a toothed
// profile if the edge is at least one tooth period long: contiguous
// top/bottom edge runs are resampled against the tooth profile, shorter
// edges are kept straight, and the tooth pushes
// outward (+normal) for upper (CCW) edges or inward (-normal) for lower
// edges.
func StampToothedEdge(a, b types.Point, t coreconfig.ToothProfile, upperPenetration float64, upper bool) []types.Point {
	period := t.C + t.D
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if period <= 0 || length < period {
		return []types.Point{a, b}
	}

	dirX, dirY := dx/length, dy/length
	// Rotate the edge direction -90 degrees for the outward normal.
	nx, ny := dy/length, -dx/length
	sign := -1.0
	if upper {
		sign = 1.0
	}

	profile := ToothProfile2D(t, upperPenetration)
	nTeeth := int(length / period)
	leadIn := (length - float64(nTeeth)*period) / 2

	place := func(along, height float64) types.Point {
		return types.Point{
			X: a.X + dirX*along + nx*height*sign,
			Y: a.Y + dirY*along + ny*height*sign,
		}
	}

	out := []types.Point{a}
	for i := 0; i < nTeeth; i++ {
		base := leadIn + float64(i)*period
		for _, v := range profile {
			out = append(out, place(base+v[0], v[1]))
		}
	}
	out = append(out, b)
	return out
}

// StampToothedPath applies StampToothedEdge across every consecutive
// pair of a polyline (not wrapping — callers slice out the specific
// top or bottom run that carries teeth).
func StampToothedPath(path []types.Point, t coreconfig.ToothProfile, upperPenetration float64, upper bool) []types.Point {
	if len(path) < 2 {
		return path
	}
	out := []types.Point{path[0]}
	for i := 0; i+1 < len(path); i++ {
		seg := StampToothedEdge(path[i], path[i+1], t, upperPenetration, upper)
		out = append(out, seg[1:]...)
	}
	return out
}
