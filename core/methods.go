// File: methods.go
// Role: Vertex and edge lifecycle plus read queries on Graph.
// Determinism:
//   - Vertices() and NeighborIDs() return IDs sorted ascending.
//   - Edges() returns edges sorted by numeric edge sequence.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]string)
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates the edge from→to, adding missing endpoints.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure both vertices exist.
//  3. Reject a second edge between the same ordered pair (ErrEdgeExists);
//     for undirected graphs either orientation counts.
//  4. Store the edge and link adjacency, mirroring it if undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, ok := g.adjacency[from][to]; ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeExists, from, to)
	}

	g.nextEdgeID++
	e := &Edge{
		ID:   edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10),
		From: from,
		To:   to,
	}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	g.adjacency[from][to] = e.ID
	if !g.directed {
		g.adjacency[to][from] = e.ID
	}

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror if undirected).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	delete(g.edges, eid)
	delete(g.adjacency[from], to)
	if !g.directed {
		delete(g.adjacency[to], from)
	}

	return nil
}

// Reverse turns the directed edge from→to into to→from, keeping its ID and
// attributes. It fails with ErrEdgeNotFound if from→to is missing and with
// ErrEdgeExists if to→from is already present. On an undirected graph it
// only swaps the stored orientation.
// Complexity: O(1).
func (g *Graph) Reverse(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	e := g.edges[eid]
	if g.directed {
		if _, dup := g.adjacency[to][from]; dup {
			return fmt.Errorf("%w: %s→%s", ErrEdgeExists, to, from)
		}
		delete(g.adjacency[from], to)
		g.adjacency[to][from] = eid
	}
	e.From, e.To = e.To, e.From

	return nil
}

// HasEdge reports whether an edge from→to exists. For undirected graphs
// the orientation is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeAttr returns the named attribute of edge from→to.
// The second result is false if the edge does not exist or the attribute
// is not set on it.
// Complexity: O(1).
func (g *Graph) EdgeAttr(from, to, name string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}
	v, ok := g.edges[eid].Attrs[name]

	return v, ok
}

// NeighborIDs returns the vertices adjacent to id, sorted ascending.
// For directed graphs only out-neighbors are returned.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every edge once, in insertion order.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// edgeSeq extracts the numeric part of an edge ID ("e12" → 12).
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[len(edgeIDPrefix):], 10, 64)
	return n
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|, counting undirected edges once. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Clone returns a deep copy of the Graph: flags, vertices, edges,
// attributes and adjacency. Edge IDs are preserved.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithDirected(g.directed))
	c.allowLoops = g.allowLoops
	c.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		c.addVertexLocked(id)
	}
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To}
		if len(e.Attrs) > 0 {
			ne.Attrs = make(map[string]float64, len(e.Attrs))
			for k, v := range e.Attrs {
				ne.Attrs[k] = v
			}
		}
		c.edges[eid] = ne
		c.adjacency[e.From][e.To] = eid
		if !c.directed {
			c.adjacency[e.To][e.From] = eid
		}
	}

	return c
}
