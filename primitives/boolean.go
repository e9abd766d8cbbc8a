package primitives

import (
	"fmt"

	"github.com/amcore/slmsupport/csg"
	"github.com/amcore/slmsupport/geom3d"
)

// DefaultCSGBackend is the CSGBackend used when a caller passes nil.
var DefaultCSGBackend CSGBackend = csg.Native{}

// BooleanIntersect returns the volume common to a and b, via backend
// (csg.Native if nil).
func BooleanIntersect(backend CSGBackend, a, b *geom3d.Part) (*geom3d.Part, error) {
	if backend == nil {
		backend = DefaultCSGBackend
	}
	result, err := backend.Intersect(a, b)
	if err != nil {
		return nil, fmt.Errorf("primitives: boolean intersect: %w", err)
	}
	return result, nil
}

// BooleanDifference returns a with b's volume removed, via backend
// (csg.Native if nil).
func BooleanDifference(backend CSGBackend, a, b *geom3d.Part) (*geom3d.Part, error) {
	if backend == nil {
		backend = DefaultCSGBackend
	}
	result, err := backend.Difference(a, b)
	if err != nil {
		return nil, fmt.Errorf("primitives: boolean difference: %w", err)
	}
	return result, nil
}

// ResolveSelfIntersections repairs a Boolean-op result's welded-duplicate
// and degenerate faces via backend (csg.Native if nil).
func ResolveSelfIntersections(backend CSGBackend, m *geom3d.Part) (*geom3d.Part, error) {
	if backend == nil {
		backend = DefaultCSGBackend
	}
	result, err := backend.ResolveSelfIntersections(m)
	if err != nil {
		return nil, fmt.Errorf("primitives: resolve self-intersections: %w", err)
	}
	return result, nil
}
