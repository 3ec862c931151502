// Package backend selects how analytics execute. A Backend is an explicit
// strategy value chosen by the caller at construction time; there is no
// global registration.
package backend

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvpar/centrality"
	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/parallel"
	"github.com/katalvlaran/lvpar/tournament"
)

// Names accepted by ByName.
const (
	NameParallel   = "parallel"
	NameSequential = "sequential"
)

// ErrUnknownBackend is returned by ByName for an unrecognised name.
var ErrUnknownBackend = fmt.Errorf("%w: backend: unknown backend", parallel.ErrInvalidParameter)

// Backend runs the analytics entry points under one execution policy.
// Options passed by the caller apply first; the backend's worker
// configuration is applied last and always wins.
type Backend interface {
	Name() string
	Betweenness(ctx context.Context, g core.Reader, opts ...centrality.Option) (map[string]float64, error)
	IsReachable(ctx context.Context, g core.Reader, s, t string, opts ...tournament.Option) (bool, error)
	IsStronglyConnected(ctx context.Context, g core.Reader, opts ...tournament.Option) (bool, error)
	TwoHopNeighborhoods(ctx context.Context, g core.Reader, opts ...tournament.Option) (map[string][]string, error)
}

// Executor is the Backend that routes every call through a fixed
// parallel.Config.
type Executor struct {
	name string
	cfg  parallel.Config
}

var _ Backend = (*Executor)(nil)

// NewParallel returns a chunk-parallel backend using cfg.
func NewParallel(cfg parallel.Config) *Executor {
	return &Executor{name: NameParallel, cfg: cfg}
}

// NewSequential returns a backend that runs every chunk inline on the
// caller's goroutine. It is the reference the parallel backend must match.
func NewSequential() *Executor {
	return &Executor{name: NameSequential, cfg: parallel.Sequential()}
}

// ByName resolves NameParallel or NameSequential. cfg is used by the
// parallel backend only (its Logger is kept for both).
func ByName(name string, cfg parallel.Config) (Backend, error) {
	switch name {
	case NameParallel:
		return NewParallel(cfg), nil
	case NameSequential:
		b := NewSequential()
		b.cfg.Logger = cfg.Logger
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownBackend, name, Names())
	}
}

// Names lists the backends accepted by ByName, sorted.
func Names() []string {
	names := []string{NameParallel, NameSequential}
	sort.Strings(names)
	return names
}

// Name returns the backend's name.
func (e *Executor) Name() string { return e.name }

// Config returns the worker configuration the backend enforces.
func (e *Executor) Config() parallel.Config { return e.cfg }

// Betweenness runs centrality.Betweenness under the backend configuration.
func (e *Executor) Betweenness(ctx context.Context, g core.Reader, opts ...centrality.Option) (map[string]float64, error) {
	return centrality.Betweenness(ctx, g, append(opts[:len(opts):len(opts)], centrality.WithConfig(e.cfg))...)
}

// IsReachable runs tournament.IsReachable under the backend configuration.
func (e *Executor) IsReachable(ctx context.Context, g core.Reader, s, t string, opts ...tournament.Option) (bool, error) {
	return tournament.IsReachable(ctx, g, s, t, append(opts[:len(opts):len(opts)], tournament.WithConfig(e.cfg))...)
}

// IsStronglyConnected runs tournament.IsStronglyConnected under the backend configuration.
func (e *Executor) IsStronglyConnected(ctx context.Context, g core.Reader, opts ...tournament.Option) (bool, error) {
	return tournament.IsStronglyConnected(ctx, g, append(opts[:len(opts):len(opts)], tournament.WithConfig(e.cfg))...)
}

// TwoHopNeighborhoods runs tournament.TwoHopNeighborhoods under the backend configuration.
func (e *Executor) TwoHopNeighborhoods(ctx context.Context, g core.Reader, opts ...tournament.Option) (map[string][]string, error) {
	return tournament.TwoHopNeighborhoods(ctx, g, append(opts[:len(opts):len(opts)], tournament.WithConfig(e.cfg))...)
}
