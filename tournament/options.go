package tournament

import (
	"fmt"

	"github.com/katalvlaran/lvpar/parallel"
)

// Sentinel errors. All wrap parallel.ErrInvalidParameter and are reported
// before any work is dispatched.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = fmt.Errorf("%w: tournament: graph is nil", parallel.ErrInvalidParameter)

	// ErrNotDirected is returned for undirected input.
	ErrNotDirected = fmt.Errorf("%w: tournament: graph is not directed", parallel.ErrInvalidParameter)

	// ErrVertexNotFound is returned when s or t is not a vertex.
	ErrVertexNotFound = fmt.Errorf("%w: tournament: vertex not found", parallel.ErrInvalidParameter)

	// ErrNotTournament is returned by WithTournamentCheck for non-tournaments.
	ErrNotTournament = fmt.Errorf("%w: tournament: graph is not a tournament", parallel.ErrInvalidParameter)
)

// Option configures a tournament query.
type Option func(*Options)

// Options holds the parameters of a tournament query.
type Options struct {
	// Parallel is the worker configuration.
	Parallel parallel.Config

	// CheckTournament validates the input with IsTournament first.
	CheckTournament bool
}

// DefaultOptions returns parallel.DefaultConfig() without validation.
func DefaultOptions() Options {
	return Options{Parallel: parallel.DefaultConfig()}
}

// WithWorkers sets the worker request (-1 = all CPUs).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Parallel.Workers = n }
}

// WithConfig replaces the whole parallel configuration.
func WithConfig(cfg parallel.Config) Option {
	return func(o *Options) { o.Parallel = cfg }
}

// WithTournamentCheck rejects non-tournaments with ErrNotTournament.
func WithTournamentCheck() Option {
	return func(o *Options) { o.CheckTournament = true }
}
