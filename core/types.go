// Package core defines the Graph and Edge types, graph and edge options,
// sentinel errors and the NewGraph constructor.
//
// A single sync.RWMutex guards vertices, edges and adjacency. Analytics
// only ever take the read side, so any number of workers can query the
// same graph concurrently.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates a second edge between the same endpoints.
	ErrEdgeExists = errors.New("core: edge already exists")
)

// WeightAttr is the conventional attribute name used by WithWeight.
const WeightAttr = "weight"

// Edge represents a connection between two vertices.
//
// In undirected graphs the same *Edge is reachable from both endpoints;
// From and To keep the orientation the edge was added with.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Attrs holds named numeric attributes (e.g. "weight", "capacity").
	Attrs map[string]float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithAttr sets the named attribute on the new edge.
func WithAttr(name string, value float64) EdgeOption {
	return func(e *Edge) {
		if e.Attrs == nil {
			e.Attrs = make(map[string]float64, 1)
		}
		e.Attrs[name] = value
	}
}

// WithWeight is shorthand for WithAttr(WeightAttr, w).
func WithWeight(w float64) EdgeOption {
	return WithAttr(WeightAttr, w)
}

// Graph is the core in-memory graph data structure.
//
// adjacency[from][to] holds the edge ID; undirected edges are mirrored
// under adjacency[to][from] with the same ID.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge
	adjacency  map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected and has no loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
