package centrality

import (
	"fmt"

	"github.com/katalvlaran/lvpar/parallel"
)

// Sentinel errors for betweenness computation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = fmt.Errorf("%w: centrality: graph is nil", parallel.ErrInvalidParameter)

	// ErrSampleSize is returned when k is outside [1, |V|].
	ErrSampleSize = fmt.Errorf("%w: centrality: sample size out of range", parallel.ErrInvalidParameter)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: centrality: invalid option supplied", parallel.ErrInvalidParameter)
)

// DefaultSeed seeds the default sampler when WithSeed is not given.
const DefaultSeed int64 = 0

// Option configures Betweenness via functional arguments. An invalid
// Option is recorded and surfaced as ErrOptionViolation when Betweenness
// is invoked.
type Option func(*Options)

// Options holds the parameters of a Betweenness call.
type Options struct {
	// K is the number of sampled sources; 0 means every vertex.
	K int

	// Normalized rescales into [0,1] (undirected, no endpoints).
	Normalized bool

	// Weight names the edge cost attribute; "" means unweighted.
	Weight string

	// StrictWeight rejects graphs with edges lacking Weight.
	StrictWeight bool

	// Endpoints counts path endpoints as well.
	Endpoints bool

	// Sampler picks the K sources.
	Sampler Sampler

	// Parallel is the worker configuration.
	Parallel parallel.Config

	err error
}

// DefaultOptions returns: all sources, normalized, unweighted, no
// endpoints, SeededSampler{DefaultSeed}, parallel.DefaultConfig().
func DefaultOptions() Options {
	return Options{
		Normalized: true,
		Sampler:    SeededSampler{Seed: DefaultSeed},
		Parallel:   parallel.DefaultConfig(),
	}
}

// WithK estimates betweenness from k sampled sources.
//
//	k ≥ 1: sample k sources (checked against |V| at call time)
//	k < 1: ErrOptionViolation
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: k must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.K = k
	}
}

// WithNormalized toggles normalisation.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithWeight selects Dijkstra on the named edge attribute.
func WithWeight(name string) Option {
	return func(o *Options) { o.Weight = name }
}

// WithStrictWeight makes a missing weight attribute an error instead of
// a unit cost.
func WithStrictWeight() Option {
	return func(o *Options) { o.StrictWeight = true }
}

// WithEndpoints includes path endpoints in the counts.
func WithEndpoints() Option {
	return func(o *Options) { o.Endpoints = true }
}

// WithSeed seeds the default sampler.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Sampler = SeededSampler{Seed: seed} }
}

// WithSampler injects a custom Sampler; nil is an ErrOptionViolation.
func WithSampler(s Sampler) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: nil sampler", ErrOptionViolation)
			return
		}
		o.Sampler = s
	}
}

// WithWorkers sets the worker request (-1 = all CPUs).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Parallel.Workers = n }
}

// WithConfig replaces the whole parallel configuration.
func WithConfig(cfg parallel.Config) Option {
	return func(o *Options) { o.Parallel = cfg }
}
