package shortestpath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/parallel"
)

// Sentinel errors.
var (
	// ErrSourceNotFound is returned when the source is not a vertex of g.
	ErrSourceNotFound = fmt.Errorf("%w: shortestpath: source vertex not found", parallel.ErrInvalidParameter)

	// ErrMissingWeight is returned in strict mode when an edge lacks the weight attribute.
	ErrMissingWeight = fmt.Errorf("%w: shortestpath: edge has no weight attribute", parallel.ErrInvalidParameter)

	// ErrNegativeWeight is returned when a negative edge weight is relaxed.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("shortestpath: neighbor iteration error")
)

// DefaultMissingWeight is the cost of an edge without the weight attribute.
const DefaultMissingWeight = 1.0

// Options selects the traversal variant.
type Options struct {
	// Weight names the edge attribute used as cost; "" means unweighted.
	Weight string

	// MissingWeight is the cost of edges lacking the attribute.
	MissingWeight float64

	// Strict turns a missing attribute into ErrMissingWeight.
	Strict bool
}

// DefaultOptions returns unweighted traversal with MissingWeight = 1.
func DefaultOptions() Options {
	return Options{MissingWeight: DefaultMissingWeight}
}

// Result is the shortest-path DAG rooted at Source.
//
//   - Order: settled vertices in non-decreasing distance, Source first.
//   - Pred:  Pred[w] lists the vertices immediately before w on shortest paths.
//   - Sigma: Sigma[w] is the number of shortest Source→w paths.
//   - Dist:  Dist[w] is the shortest distance (edge count when unweighted).
//
// Only reached vertices have entries.
type Result struct {
	Source string
	Order  []string
	Pred   map[string][]string
	Sigma  map[string]float64
	Dist   map[string]float64
}

func newResult(source string, n int) *Result {
	return &Result{
		Source: source,
		Order:  make([]string, 0, n),
		Pred:   make(map[string][]string, n),
		Sigma:  make(map[string]float64, n),
		Dist:   make(map[string]float64, n),
	}
}

// SingleSource runs Weighted when opts.Weight is set and Unweighted otherwise.
func SingleSource(g core.Reader, source string, opts Options) (*Result, error) {
	if opts.Weight == "" {
		return Unweighted(g, source)
	}
	return Weighted(g, source, opts)
}

// CheckWeights verifies that every edge of g carries the named attribute.
// It is the eager counterpart of Options.Strict.
// Complexity: O(V + E).
func CheckWeights(g core.Reader, name string) error {
	for _, u := range g.Vertices() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighbors, u, err)
		}
		for _, v := range nbrs {
			if _, ok := g.EdgeAttr(u, v, name); !ok {
				return fmt.Errorf("%w: %s→%s lacks %q", ErrMissingWeight, u, v, name)
			}
		}
	}
	return nil
}
