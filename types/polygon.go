package types

// Ring is a closed loop of raw 2D coordinates, independent of any mesh's
// vertex array. Unlike PolygonLoop (which indexes into a mesh), a Ring
// carries its own points — the representation used by the polygon offset
// and clipping engine, whose inputs and outputs are not mesh-backed.
//
// The loop is implicitly closed: the last point connects back to the first.
type Ring []Point

// Paths is an unordered collection of closed rings, the subject/clip/result
// type for offsetting and clipping operations (mirrors a Clipper PathsD).
type Paths []Ring

// Polygon is a single outer ring with zero or more hole rings cut from it.
//
// Orientation is not enforced by the type itself; callers that need a
// canonical winding should call algorithm/polygon.ReverseIfNeeded.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// Clone returns a deep copy of the ring.
func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// Clone returns a deep copy of the polygon, including its holes.
func (p Polygon) Clone() Polygon {
	out := Polygon{Outer: p.Outer.Clone()}
	if len(p.Holes) > 0 {
		out.Holes = make([]Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = h.Clone()
		}
	}
	return out
}

// Rings flattens a polygon into its outer ring followed by its holes,
// the normalized "always a list of rings" representation used in place
// of runtime Polygon/MultiPolygon dispatch.
func (p Polygon) Rings() Paths {
	out := make(Paths, 0, 1+len(p.Holes))
	out = append(out, p.Outer)
	out = append(out, p.Holes...)
	return out
}

// PolyTree groups rings hierarchically: each entry is an exterior ring,
// paired with the interior (hole) rings immediately nested inside it.
// No function in this module builds one: polygon.Clip returns flat
// Paths, and SortExteriorInterior splits flat Paths by orientation only.
type PolyTree struct {
	Nodes []PolyTreeNode
}

// PolyTreeNode pairs one exterior ring with the holes cut from it.
type PolyTreeNode struct {
	Exterior Ring
	Holes    []Ring
}
