// Package core provides the thread-safe in-memory Graph consumed by the
// lvpar analytics engines, together with the read-only Reader contract the
// engines are written against.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Named numeric edge attributes (WithAttr, WithWeight), looked up by
//     name at query time: EdgeAttr(from, to, "weight")
//   - Deterministic iteration: Vertices() and NeighborIDs() return sorted IDs
//
// Analytics never mutate a graph. Every engine (centrality, tournament)
// accepts a core.Reader, shares it by reference between its workers and
// relies on the Reader being immutable for the duration of the call.
// *core.Graph satisfies Reader; its read methods take a read lock so that
// concurrent workers never contend with each other.
//
// Core Methods:
//
//	AddVertex(id string) error                               // O(1)
//	AddEdge(from, to string, opts ...EdgeOption) error       // O(1)
//	RemoveEdge(from, to string) error                        // O(1)
//	HasVertex(id string) bool                                // O(1)
//	HasEdge(from, to string) bool                            // O(1)
//	EdgeAttr(from, to, name string) (float64, bool)          // O(1)
//	NeighborIDs(id string) ([]string, error)                 // O(d·log d)
//	Vertices() []string                                      // O(V·log V)
//	Edges() []*Edge                                          // O(E·log E)
//	VertexCount() int, EdgeCount() int                       // O(1)
//	Clone() *Graph                                           // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID    – zero-length vertex ID
//	ErrVertexNotFound   – missing vertex
//	ErrEdgeNotFound     – missing edge
//	ErrLoopNotAllowed   – self-loop when loops are disabled
//	ErrEdgeExists       – second edge between the same ordered endpoints
package core
