// Package blocksupport holds the BlockSupport data model: one physical
// support volume plus, for a grid-filled block, the truss/skin
// parameters and memoized fill geometry needed to materialize it.
package blocksupport

import (
	"fmt"

	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/geom3d"
)

// Kind distinguishes BlockSupport variants. Go has no inheritance, so
// BlockSupport is a plain tagged struct (Kind plus an optional grid
// field) rather than a base type with a virtual geometry() method.
type Kind int

const (
	// KindPlain is a support volume with no truss/skin fill; its
	// geometry is simply SupportVolume.
	KindPlain Kind = iota
	// KindGrid is a support volume filled with a truss lattice and
	// conformal skin, materialized lazily via SetGridGeometry.
	KindGrid
)

// GridParams is the truss/skin tuning a KindGrid block materializes its
// fill geometry with.
type GridParams struct {
	Params coreconfig.Parameters
	Tol    coreconfig.Tolerances
}

// BlockSupport is one support region's extracted geometry: the flattened
// 2D surface that seeded it, the 3D solid volume, whether that volume
// overlaps the source part, and (if it does) the isolated upper surface
// used for the teeth/skin wrap.
//
// part is a non-owning back-reference to the originating Part — never
// mutated by this package, enforced by exposing no mutating method on
// *geom3d.Part from here.
type BlockSupport struct {
	SupportSurface *geom3d.Part
	SupportVolume  *geom3d.Part
	IntersectsPart bool
	UpperSurface   *geom3d.Part

	kind        Kind
	gridParams  GridParams
	gridFill    *geom3d.Part // memoized truss+skin composite, KindGrid only
	hasGridFill bool

	part *geom3d.Part
}

// NewBlockSupport constructs a plain (KindPlain) BlockSupport, recording
// part as its non-owning back-reference.
func NewBlockSupport(surface, volume *geom3d.Part, intersects bool, upper *geom3d.Part, part *geom3d.Part) BlockSupport {
	return BlockSupport{
		SupportSurface: surface,
		SupportVolume:  volume,
		IntersectsPart: intersects,
		UpperSurface:   upper,
		kind:           KindPlain,
		part:           part,
	}
}

// WithGridParams returns a copy of b tagged KindGrid with the given
// truss/skin tuning. Its fill geometry is unset until SetGridGeometry is
// called (by truss.GenerateSlices/skin.GenerateSkin's caller, which
// import blocksupport and so can't be called from here without a cycle).
func (b BlockSupport) WithGridParams(params GridParams) BlockSupport {
	b.kind = KindGrid
	b.gridParams = params
	b.hasGridFill = false
	b.gridFill = nil
	return b
}

// Kind reports which variant b is, for Geometry's dispatch.
func (b BlockSupport) Kind() Kind { return b.kind }

// GridParams returns b's truss/skin tuning. Only meaningful when
// Kind() == KindGrid.
func (b BlockSupport) GridParams() GridParams { return b.gridParams }

// SetGridGeometry memoizes b's truss+skin fill mesh. Panics if b is not
// KindGrid, since that would indicate a caller bug (materializing fill
// geometry for a block that was never tagged as grid-filled).
func (b *BlockSupport) SetGridGeometry(part *geom3d.Part) {
	if b.kind != KindGrid {
		panic("blocksupport: SetGridGeometry called on a non-grid BlockSupport")
	}
	b.gridFill = part
	b.hasGridFill = true
}

// Part returns the non-owning back-reference to the originating mesh.
func (b BlockSupport) Part() *geom3d.Part { return b.part }

// Geometry dispatches on b's Kind to materialize its final mesh: for
// KindPlain this is SupportVolume; for KindGrid it's the memoized
// truss+skin composite set by SetGridGeometry.
func Geometry(b BlockSupport) (*geom3d.Part, error) {
	switch b.kind {
	case KindPlain:
		if b.SupportVolume == nil {
			return nil, fmt.Errorf("blocksupport: plain block has no SupportVolume")
		}
		return b.SupportVolume, nil
	case KindGrid:
		if !b.hasGridFill {
			return nil, fmt.Errorf("blocksupport: grid block geometry not yet materialized; call SetGridGeometry first")
		}
		return b.gridFill, nil
	default:
		return nil, fmt.Errorf("blocksupport: unknown block kind %d", b.kind)
	}
}
