// Package primitives exposes the support-generation core's geometry
// operations as thin, composable functions over geom3d/cdt/mesh/csg/
// algorithm/polygon. Nothing here owns long-lived state; every function
// takes its inputs and returns a fresh value, the same shape the
// teacher's algorithm/* packages use.
package primitives

import "errors"

// ErrDegenerateOutline is returned by FlattenSupportRegion when a
// patch's projected boundary is not a simple set of closed loops.
var ErrDegenerateOutline = errors.New("primitives: degenerate outline")

// ErrEmptyBackendResult names a CSGBackend call that succeeds but yields
// a mesh with no faces. No function in this module returns it: the
// Boolean wrappers pass an empty result through as an empty Part.
var ErrEmptyBackendResult = errors.New("primitives: boolean result is empty")
