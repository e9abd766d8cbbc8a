package spatial

import "github.com/amcore/slmsupport/types"

// Index provides spatial queries for vertices.
type Index interface {
	// FindVerticesNear returns candidate vertex IDs near point p: every
	// vertex within radius is included, and vertices somewhat farther
	// away may be included too.
	FindVerticesNear(p types.Point, radius float64) []types.VertexID
	// AddVertex adds a vertex to the index.
	AddVertex(id types.VertexID, p types.Point)
	// Build finalizes the index structure.
	Build()
}
