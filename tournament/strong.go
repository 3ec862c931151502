package tournament

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/parallel"
)

// IsStronglyConnected reports whether every vertex of the tournament g is
// reachable from every other one. Graphs with fewer than two vertices are
// strongly connected.
//
// Phases: neighborhoods (over vertex chunks), closed flags (over
// neighborhood chunks), then an AND over target chunks: target v is
// reachable from all u iff no closed neighborhood N(u) excludes v. Each
// N(u) holds u, so a closed one that misses v separates u from v.
// Complexity: O(V³/64) spread over the workers.
func IsStronglyConnected(ctx context.Context, g core.Reader, opts ...Option) (bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, o); err != nil {
		return false, err
	}

	ix, err := newIndex(g)
	if err != nil {
		return false, err
	}
	n := len(ix.ids)
	if n < 2 {
		return true, nil
	}
	size := parallel.ChunkSize(n, o.Parallel.EffectiveWorkers())
	nbhds, err := neighborhoods(ctx, o.Parallel, ix, size)
	if err != nil {
		return false, err
	}

	closedParts, err := parallel.Map(ctx, o.Parallel, parallel.Chunks(parallel.Flatten(nbhds), size),
		func(ctx context.Context, chunk []bits.Bits) ([]bits.Bits, error) {
			var res []bits.Bits
			for _, S := range chunk {
				if ix.closed(S) {
					res = append(res, S)
				}
			}
			return res, nil
		})
	if err != nil {
		return false, err
	}
	var closed []bits.Bits
	for S := range parallel.Flatten(closedParts) {
		closed = append(closed, S)
	}

	targets := make([]int, n)
	for i := range targets {
		targets[i] = i
	}
	ok, err := parallel.All(ctx, o.Parallel, parallel.ChunkSlice(targets, size),
		func(ctx context.Context, chunk []int) (bool, error) {
			for _, v := range chunk {
				if err := ctx.Err(); err != nil {
					return false, err
				}
				for _, S := range closed {
					if S.Bit(v) == 0 {
						return false, nil
					}
				}
			}
			return true, nil
		})
	if err != nil {
		return false, err
	}
	o.Parallel.Log(ctx).WithFields(logrus.Fields{
		"vertices": n,
		"closed":   len(closed),
		"strong":   ok,
	}).Debug("tournament: strong connectivity")

	return ok, nil
}
