// SPDX-License-Identifier: MIT
// Package: lvpar/builder
//
// impl_random.go - stochastic topologies: RandomSparse and tournaments.
//
// Determinism:
//   - Trials run in a fixed order (i asc, j asc), so a fixed seed yields
//     a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpar/core"
)

const (
	methodRandomSparse         = "RandomSparse"
	methodTransitiveTournament = "TransitiveTournament"
	methodRandomTournament     = "RandomTournament"

	minRandomSparseVertices = 1
	minTournamentVertices   = 1
)

// RandomSparse samples an Erdős–Rényi graph G(n,p): every admissible
// pair becomes an edge independently with probability p.
//
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed: ordered pairs (i,j); i==j only if g.Looped().
//
// n ≥ 1, 0 ≤ p ≤ 1, and an RNG is required when 0 < p < 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			start := 0
			if !directed {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !bernoulli(cfg, p) {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// bernoulli returns true with probability p; p∈{0,1} never draws.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

// TransitiveTournament builds the acyclic tournament on n vertices with
// i→j for every i<j. It is strongly connected only for n == 1.
// Requires a directed graph.
// Complexity: O(n²).
func TransitiveTournament(n int) Constructor {
	return tournament(methodTransitiveTournament, n, 0)
}

// RandomTournament builds a tournament on n vertices where each pair
// i<j is oriented i→j with probability p and j→i otherwise.
// Requires a directed graph and, for 0 < p < 1, an RNG.
// Complexity: O(n²).
func RandomTournament(n int, p float64) Constructor {
	return tournament(methodRandomTournament, n, p)
}

func tournament(method string, n int, p float64) Constructor {
	transitive := method == methodTransitiveTournament
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(method, n, minTournamentVertices); err != nil {
			return err
		}
		if !g.Directed() {
			return fmt.Errorf("%s: undirected graph: %w", method, ErrUnsupportedGraphMode)
		}
		if !transitive {
			if p < 0 || p > 1 {
				return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
			}
			if cfg.rng == nil && p > 0 && p < 1 {
				return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
			}
		}
		if err := addVertices(method, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if !transitive && !bernoulli(cfg, p) {
					u, v = v, u
				}
				if err := addEdge(method, g, cfg, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
