// SPDX-License-Identifier: MIT
// Package: lvpar/builder
//
// impl_classic.go - deterministic topologies: Path, Cycle, Star, Complete.
//
// Contract:
//   - Vertices are added via cfg.idFn in ascending index order.
//   - Edges are emitted in a stable, documented order.
//   - On a directed graph every listed edge u→v is one-way.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpar/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1

	// StarCenter is the fixed ID of the hub built by Star.
	StarCenter = "Center"
)

func checkMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	return nil
}

// Path builds P_n with edges (i-1)→i for i=1..n-1 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds C_n with edges i→(i+1) mod n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds a hub StarCenter with n-1 leaves cfg.idFn(0..n-2) and
// edges Center→leaf (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := g.AddVertex(StarCenter); err != nil {
			return builderErrorf(methodStar, err, "AddVertex(%s)", StarCenter)
		}
		if err := addVertices(methodStar, g, cfg, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodStar, g, cfg, StarCenter, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds K_n (n ≥ 1). Undirected: one edge per pair i<j.
// Directed: both i→j and j→i.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if err := addEdge(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
