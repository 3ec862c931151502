package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpar/parallel"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = fmt.Errorf("%w: dfs: graph is nil", parallel.ErrInvalidParameter)

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = fmt.Errorf("%w: dfs: start vertex not found", parallel.ErrInvalidParameter)

	// ErrTargetNotFound indicates that the target vertex does not exist.
	ErrTargetNotFound = fmt.Errorf("%w: dfs: target vertex not found", parallel.ErrInvalidParameter)

	// errStop ends a traversal early once a hook has its answer.
	errStop = errors.New("dfs: stop")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before
	// recursing. Return false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts from every unvisited vertex (forest mode).
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// single-source mode.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its tree depth from its root.
	Depth map[string]int

	// Parent maps each discovered vertex to the vertex it was reached from.
	// Roots do not appear.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
