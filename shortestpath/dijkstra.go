package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpar/core"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Reader
	opts    Options
	res     *Result
	settled map[string]bool    // distance is final
	seen    map[string]float64 // best tentative distance
	pq      nodePQ
	seq     uint64 // push counter; breaks distance ties by discovery order
}

// Weighted runs Dijkstra from source on the edge attribute opts.Weight,
// counting every shortest path.
//
// Returns ErrSourceNotFound for an unknown source, ErrNegativeWeight when
// a negative edge is relaxed, ErrMissingWeight for a missing attribute in
// strict mode, and ErrNeighbors on graph failures.
func Weighted(g core.Reader, source string, opts Options) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		opts:    opts,
		res:     newResult(source, n),
		settled: make(map[string]bool, n),
		seen:    map[string]float64{source: 0},
		pq:      make(nodePQ, 0, n),
	}
	r.res.Sigma[source] = 1
	r.push(0, source, source)

	return r.res, r.process()
}

func (r *runner) push(dist float64, pred, v string) {
	heap.Push(&r.pq, &nodeItem{dist: dist, seq: r.seq, pred: pred, id: v})
	r.seq++
}

// process pops vertices in increasing distance. The first pop of a vertex
// settles it and adds the path count of the predecessor that discovered it;
// further predecessors at equal distance were already added in relax.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		v := item.id
		if r.settled[v] {
			continue
		}
		if v != r.res.Source {
			r.res.Sigma[v] += r.res.Sigma[item.pred]
		}
		r.settled[v] = true
		r.res.Dist[v] = item.dist
		r.res.Order = append(r.res.Order, v)

		if err := r.relax(v, item.dist); err != nil {
			return err
		}
	}
	return nil
}

// relax examines every out-edge of v (settled at distance d).
//
//   - strictly shorter tentative distance: reset sigma and predecessors of w
//     to the new route and push w;
//   - equal distance: another shortest route, add sigma[v] and record v.
func (r *runner) relax(v string, d float64) error {
	nbrs, err := r.g.NeighborIDs(v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, v, err)
	}
	for _, w := range nbrs {
		cost, err := r.weight(v, w)
		if err != nil {
			return err
		}
		vw := d + cost

		best, seen := r.seen[w]
		switch {
		case !r.settled[w] && (!seen || vw < best):
			r.seen[w] = vw
			r.push(vw, v, w)
			r.res.Sigma[w] = 0
			r.res.Pred[w] = []string{v}
		case seen && vw == best:
			r.res.Sigma[w] += r.res.Sigma[v]
			r.res.Pred[w] = append(r.res.Pred[w], v)
		}
	}
	return nil
}

func (r *runner) weight(v, w string) (float64, error) {
	cost, ok := r.g.EdgeAttr(v, w, r.opts.Weight)
	if !ok {
		if r.opts.Strict {
			return 0, fmt.Errorf("%w: %s→%s lacks %q", ErrMissingWeight, v, w, r.opts.Weight)
		}
		cost = r.opts.MissingWeight
	}
	if cost < 0 {
		return 0, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, v, w, cost)
	}
	return cost, nil
}

// nodeItem is a heap entry: tentative distance of id, reached from pred.
type nodeItem struct {
	dist float64
	seq  uint64
	pred string
	id   string
}

// nodePQ is a min-heap ordered by (dist, seq). Stale entries stay in the
// heap and are skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
