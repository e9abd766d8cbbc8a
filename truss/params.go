// Package truss implements component D: per-slice truss, border, and
// tooth geometry for a BlockSupport's interior fill, reused by the skin
// package for its own infill pattern.
package truss

import "github.com/amcore/slmsupport/coreconfig"

// Params bundles the caller-tunable Parameters and fixed Tolerances a
// slice or skin generation call needs, plus the one structural toggle
// the composition step names that isn't itself a tunable
// millimeter/degree value.
type Params struct {
	P   coreconfig.Parameters
	Tol coreconfig.Tolerances

	// UseSupportBorder selects step 6's composition: true unions the
	// truss interior with a solid border ring, false emits truss ∩
	// outerPath alone.
	UseSupportBorder bool
}

// DefaultParams returns Params seeded from coreconfig's documented
// defaults, with the border ring enabled.
func DefaultParams() Params {
	return Params{
		P:                coreconfig.Default(),
		Tol:              coreconfig.DefaultTolerances(),
		UseSupportBorder: true,
	}
}
