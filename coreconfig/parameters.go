// Package coreconfig holds the pipeline's tunable Parameters and fixed
// internal Tolerances as immutable value structs, threaded explicitly
// through every component entry point rather than scattered as
// module-level constants.
package coreconfig

// GridSpacing is the (X,Y) pitch of a truss lattice.
type GridSpacing struct {
	X, Y float64
}

// ToothProfile is the four-parameter tooth stamp geometry:
// A = tooth length, B = tooth base width, C = tooth period,
// D = tooth penetration depth.
type ToothProfile struct {
	A, B, C, D float64
}

// Parameters is the caller-tunable configuration for the whole pipeline,
// defaults unchanged from the source implementation.
type Parameters struct {
	RayProjectionResolution float64
	OverhangAngle           float64
	MinimumAreaThreshold    float64
	OuterSupportEdgeGap     float64
	InnerSupportEdgeGap     float64
	UpperProjectionOffset   float64
	LowerProjectionOffset   float64
	TriangulationSpacing    float64
	SimplifyPolygonFactor   float64
	GridSpacing             GridSpacing
	TrussWidth              float64
	TrussAngle              float64
	SupportBorderDistance   float64
	SupportWallThickness    float64
	Tooth                   ToothProfile
	SupportTeethUpperPenetration float64
	UseUpperSupportTeeth         bool
	UseLowerSupportTeeth         bool
	NumSkinMeshSubdivideIterations int
	MergeMesh                      bool
	UseApproxBasePlateSupport      bool
}

// Tolerances are the pipeline's fixed internal tolerances — never
// user-tunable, grouped into one Tolerances value instead of
// scattered constants.
type Tolerances struct {
	SideAngle              float64
	IntersectionVolume     float64
	GaussianSigma          float64
	PointOverhangTolerance float64
	PairMatch              float64
}

// Default returns the parameter set's documented defaults.
func Default() Parameters {
	return Parameters{
		RayProjectionResolution:       0.2,
		OverhangAngle:                 45,
		MinimumAreaThreshold:          5,
		OuterSupportEdgeGap:           0.5,
		InnerSupportEdgeGap:           0.2,
		UpperProjectionOffset:         0.05,
		LowerProjectionOffset:         0.05,
		TriangulationSpacing:          2,
		SimplifyPolygonFactor:         0.5,
		GridSpacing:                   GridSpacing{X: 3, Y: 3},
		TrussWidth:                    1,
		TrussAngle:                    45,
		SupportBorderDistance:         3,
		SupportWallThickness:          0.5,
		Tooth:                         ToothProfile{A: 1.5, B: 0.1, C: 1.5, D: 0.2},
		SupportTeethUpperPenetration:  0.2,
		UseUpperSupportTeeth:          true,
		UseLowerSupportTeeth:          true,
		NumSkinMeshSubdivideIterations: 2,
		MergeMesh:                      false,
		UseApproxBasePlateSupport:      false,
	}
}

// DefaultTolerances returns the pipeline's fixed internal tolerances.
func DefaultTolerances() Tolerances {
	return Tolerances{
		SideAngle:              1e-3,
		IntersectionVolume:     50,
		GaussianSigma:          1.0,
		PointOverhangTolerance: 0.05,
		PairMatch:              0.1,
	}
}
