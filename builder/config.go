// SPDX-License-Identifier: MIT
// Package: lvpar/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn       = DefaultIDFn     ("0","1","2",...)
//   - rng        = nil             (pure unless seeded)
//   - weightFn   = DefaultWeightFn (constant DefaultEdgeWeight)
//   - weightAttr = core.WeightAttr

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvpar/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	weightFn   WeightFn
	weightAttr string
}

// newBuilderConfig applies opts over the defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		weightFn:   DefaultWeightFn,
		weightAttr: core.WeightAttr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weightAttr == "" {
		cfg.weightAttr = core.WeightAttr
	}

	return cfg
}

// addVertices inserts cfg.idFn(0..n-1) in index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return builderErrorf(method, err, "AddVertex(%s)", id)
		}
	}
	return nil
}

// addEdge inserts u→v with a weight drawn from cfg.weightFn.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, core.WithAttr(cfg.weightAttr, w)); err != nil {
		return builderErrorf(method, err, "AddEdge(%s→%s, w=%g)", u, v, w)
	}
	return nil
}
