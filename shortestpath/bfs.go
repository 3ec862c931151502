package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/lvpar/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Reader
	queue []string
	res   *Result
}

// Unweighted runs breadth-first search from source, counting every
// shortest path. Returns ErrSourceNotFound for an unknown source and
// ErrNeighbors if the graph fails to list neighbors.
func Unweighted(g core.Reader, source string) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		queue: make([]string, 0, n),
		res:   newResult(source, n),
	}
	w.res.Sigma[source] = 1
	w.res.Dist[source] = 0
	w.queue = append(w.queue, source)

	return w.res, w.loop()
}

// loop settles vertices level by level. Every edge v→w with
// Dist[w] == Dist[v]+1 adds sigma[v] paths to w and records v as a predecessor.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)

		dv := w.res.Dist[v]
		sv := w.res.Sigma[v]
		nbrs, err := w.graph.NeighborIDs(v)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, v, err)
		}
		for _, nb := range nbrs {
			dn, seen := w.res.Dist[nb]
			if !seen {
				dn = dv + 1
				w.res.Dist[nb] = dn
				w.queue = append(w.queue, nb)
			}
			if dn == dv+1 {
				w.res.Sigma[nb] += sv
				w.res.Pred[nb] = append(w.res.Pred[nb], v)
			}
		}
	}
	return nil
}
