package centrality

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/parallel"
	"github.com/katalvlaran/lvpar/shortestpath"
)

// Betweenness returns the betweenness centrality of every vertex of g.
//
// Sources are every vertex, or WithK(k) vertices drawn by the Sampler.
// They are split into chunks of parallel.ChunkSize(|sources|, workers);
// each chunk produces a partial Scores map over all vertices, the parts
// are summed and Rescale is applied once.
//
// Returns:
//   - ErrGraphNil, ErrOptionViolation, ErrSampleSize,
//     shortestpath.ErrMissingWeight (strict mode): before any work starts.
//   - an error wrapping parallel.ErrComputationFailure if a worker fails.
//   - ctx.Err() if ctx is cancelled.
//
// An empty graph yields an empty map.
// Complexity: O(|sources|·(V+E)) unweighted, O(|sources|·(V+E)·log V)
// weighted, spread over the workers; memory O(workers·V).
func Betweenness(ctx context.Context, g core.Reader, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return map[string]float64{}, nil
	}

	sources := vertices
	if o.K > 0 {
		if o.K > n {
			return nil, fmt.Errorf("%w: k=%d, |V|=%d", ErrSampleSize, o.K, n)
		}
		var err error
		if sources, err = o.Sampler.Sample(vertices, o.K); err != nil {
			return nil, err
		}
	}
	if o.Weight != "" && o.StrictWeight {
		if err := shortestpath.CheckWeights(g, o.Weight); err != nil {
			return nil, err
		}
	}

	spOpts := shortestpath.Options{
		Weight:        o.Weight,
		MissingWeight: shortestpath.DefaultMissingWeight,
		Strict:        o.StrictWeight,
	}
	accumulate := AccumulateBasic
	if o.Endpoints {
		accumulate = AccumulateEndpoints
	}

	workers := o.Parallel.EffectiveWorkers()
	size := parallel.ChunkSize(len(sources), workers)
	o.Parallel.Log(ctx).WithFields(logrus.Fields{
		"vertices": n,
		"sources":  len(sources),
		"workers":  workers,
		"chunk":    size,
		"weighted": o.Weight != "",
	}).Debug("centrality: betweenness")

	parts, err := parallel.Map(ctx, o.Parallel, parallel.ChunkSlice(sources, size),
		func(ctx context.Context, chunk []string) (Scores, error) {
			return subsetScores(ctx, g, vertices, chunk, spOpts, accumulate)
		})
	if err != nil {
		return nil, err
	}

	total := Reduce(vertices, parts)
	Rescale(total, n, RescaleParams{
		Normalized: o.Normalized,
		Directed:   g.Directed(),
		Endpoints:  o.Endpoints,
		K:          o.K,
	})

	return total, nil
}

// subsetScores accumulates the unscaled dependencies of every source in
// chunk into a fresh Scores map over all vertices.
func subsetScores(
	ctx context.Context,
	g core.Reader,
	vertices, chunk []string,
	opts shortestpath.Options,
	accumulate func(Scores, *shortestpath.Result),
) (Scores, error) {
	scores := NewScores(vertices)
	for _, s := range chunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := shortestpath.SingleSource(g, s, opts)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", s, err)
		}
		accumulate(scores, res)
	}

	return scores, nil
}
