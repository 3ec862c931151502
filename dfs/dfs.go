package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpar/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph core.Reader
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component in g.Vertices() order; otherwise it starts only from
// startID. A partial result is returned alongside hook or context errors.
func DFS(g core.Reader, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify startID
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	w := &walker{graph: g, opts: o, res: res}

	// 5. Traverse: forest or single tree
	if !o.FullTraversal {
		return res, w.traverse(startID, 0)
	}
	for _, v := range g.Vertices() {
		if res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return res, err
		}
	}
	return res, nil
}

// traverse visits id at the given depth, then recurses into neighbors.
func (w *walker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return err
		}
	}

	// 4. Depth limit: do not expand beyond MaxDepth
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		w.res.Order = append(w.res.Order, id)
		return nil
	}

	// 5. Explore each neighbor
	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbrs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)
	return nil
}

// Reachable reports whether a directed path s→t exists. s reaches itself.
func Reachable(ctx context.Context, g core.Reader, s, t string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(t) {
		return false, fmt.Errorf("%w: %q", ErrTargetNotFound, t)
	}
	stopAtTarget := func(id string) error {
		if id == t {
			return errStop
		}
		return nil
	}
	_, err := DFS(g, s, WithContext(ctx), WithOnVisit(stopAtTarget))
	if errors.Is(err, errStop) {
		return true, nil
	}
	return false, err
}

// StronglyConnected reports whether every vertex reaches every other.
// Graphs with fewer than two vertices are strongly connected.
func StronglyConnected(ctx context.Context, g core.Reader) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) < 2 {
		return true, nil
	}

	fwd, err := DFS(g, vs[0], WithContext(ctx))
	if err != nil {
		return false, err
	}
	if len(fwd.Visited) != len(vs) {
		return false, nil
	}

	rev, err := transpose(ctx, g)
	if err != nil {
		return false, err
	}
	back, err := DFS(rev, vs[0], WithContext(ctx))
	if err != nil {
		return false, err
	}
	return len(back.Visited) == len(vs), nil
}

// transposed is g with every arc reversed.
type transposed struct {
	core.Reader
	in map[string][]string
}

func transpose(ctx context.Context, g core.Reader) (*transposed, error) {
	vs := g.Vertices()
	in := make(map[string][]string, len(vs))
	for _, v := range vs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", v, err)
		}
		for _, w := range nbrs {
			in[w] = append(in[w], v)
		}
	}
	return &transposed{Reader: g, in: in}, nil
}

func (t *transposed) NeighborIDs(id string) ([]string, error) {
	if !t.Reader.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
	}
	return t.in[id], nil
}

func (t *transposed) HasEdge(from, to string) bool {
	return t.Reader.HasEdge(to, from)
}

func (t *transposed) EdgeAttr(from, to, name string) (float64, bool) {
	return t.Reader.EdgeAttr(to, from, name)
}
