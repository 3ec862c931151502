// File: reader.go
// Role: Read-only query surface shared by every analytics engine.
// Policy:
//   - Implementations must be safe for concurrent readers.
//   - Implementations must not change while an engine call is running.

package core

// Reader is the read-only view of a graph that analytics operate on.
//
// Vertices must return the same order on every call for an unmodified
// graph; engines derive chunk layouts and samples from it. For directed
// graphs NeighborIDs returns out-neighbors only.
type Reader interface {
	// Vertices returns every vertex ID in a stable order.
	Vertices() []string

	// VertexCount returns |V|.
	VertexCount() int

	// NeighborIDs returns the vertices adjacent to id (out-neighbors if directed).
	NeighborIDs(id string) ([]string, error)

	// HasVertex reports whether id is a vertex.
	HasVertex(id string) bool

	// HasEdge reports whether an edge from→to exists (either direction if undirected).
	HasEdge(from, to string) bool

	// EdgeAttr returns the named attribute of edge from→to and whether it is set.
	EdgeAttr(from, to, name string) (float64, bool)

	// Directed reports whether edges are one-way.
	Directed() bool
}

var _ Reader = (*Graph)(nil)
