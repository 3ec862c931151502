package tournament

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/parallel"
)

// IsReachable reports whether the tournament g has a directed path from s
// to t. It returns false iff some two-hop neighborhood S satisfies
// s ∈ S ∧ t ∉ S ∧ closed(S).
//
// Returns ErrGraphNil, ErrNotDirected, ErrVertexNotFound or
// ErrNotTournament (with WithTournamentCheck) before any work starts.
// Complexity: O(V·(V+E)/64 + V³/64) spread over the workers.
func IsReachable(ctx context.Context, g core.Reader, s, t string, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, o); err != nil {
		return false, err
	}
	for _, v := range []string{s, t} {
		if !g.HasVertex(v) {
			return false, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
	}

	ix, err := newIndex(g)
	if err != nil {
		return false, err
	}
	size := parallel.ChunkSize(len(ix.ids), o.Parallel.EffectiveWorkers())
	nbhds, err := neighborhoods(ctx, o.Parallel, ix, size)
	if err != nil {
		return false, err
	}

	si, ti := ix.pos[s], ix.pos[t]
	ok, err := parallel.All(ctx, o.Parallel, parallel.Chunks(parallel.Flatten(nbhds), size),
		func(ctx context.Context, chunk []bits.Bits) (bool, error) {
			for _, S := range chunk {
				if err := ctx.Err(); err != nil {
					return false, err
				}
				if S.Bit(si) == 1 && S.Bit(ti) == 0 && ix.closed(S) {
					return false, nil
				}
			}
			return true, nil
		})
	if err != nil {
		return false, err
	}
	o.Parallel.Log(ctx).WithFields(logrus.Fields{"s": s, "t": t, "reachable": ok}).Debug("tournament: reachability")

	return ok, nil
}

// TwoHopNeighborhoods returns N(v) = {v} ∪ out(v) ∪ out(out(v)) for every vertex
// v of g, each as IDs in g.Vertices() order. It is phase 1 of IsReachable.
func TwoHopNeighborhoods(ctx context.Context, g core.Reader, opts ...Option) (map[string][]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, o); err != nil {
		return nil, err
	}
	ix, err := newIndex(g)
	if err != nil {
		return nil, err
	}
	size := parallel.ChunkSize(len(ix.ids), o.Parallel.EffectiveWorkers())
	nbhds, err := neighborhoods(ctx, o.Parallel, ix, size)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(ix.ids))
	i := 0
	for S := range parallel.Flatten(nbhds) {
		out[ix.ids[i]] = ix.names(S)
		i++
	}
	return out, nil
}

// neighborhoods computes N(v) for every index, chunked by size. The
// per-chunk slices keep vertex order, so flattening them yields N(0..n-1).
func neighborhoods(ctx context.Context, cfg parallel.Config, ix *index, size int) ([][]bits.Bits, error) {
	positions := make([]int, len(ix.ids))
	for i := range positions {
		positions[i] = i
	}
	return parallel.Map(ctx, cfg, parallel.ChunkSlice(positions, size),
		func(ctx context.Context, chunk []int) ([]bits.Bits, error) {
			res := make([]bits.Bits, 0, len(chunk))
			for _, v := range chunk {
				res = append(res, ix.neighborhood(v))
			}
			return res, nil
		})
}
