package primitives

import (
	"math"

	"github.com/amcore/slmsupport/geom3d"
)

// FaceZProjectionWeight returns sin(angle between each face normal and
// +Z) — the weighting used to scale a face's contribution to the
// downward-support projection by how steeply it faces away from
// vertical.
func FaceZProjectionWeight(p *geom3d.Part) []float64 {
	out := make([]float64, len(p.FaceNormal))
	for i, n := range p.FaceNormal {
		out[i] = math.Sin(n.AngleTo(geom3d.UnitZ))
	}
	return out
}

// SupportAngles returns each face's inclination from horizontal, in
// degrees: 0 for a face pointing straight up or straight down (the
// worst-case overhang), 90 for a vertical wall (self-supporting). This
// is the angle overhang classification thresholds against (OverhangAngle,
// SupportWallAngleCutoff).
func SupportAngles(p *geom3d.Part) []float64 {
	out := make([]float64, len(p.FaceNormal))
	for i, n := range p.FaceNormal {
		theta := n.AngleTo(geom3d.UnitZ) * 180 / math.Pi // 0..180, 0 = +Z
		out[i] = 90 - math.Abs(theta-90)
	}
	return out
}
