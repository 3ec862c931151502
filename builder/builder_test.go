// Package builder_test covers every constructor: vertex/edge counts,
// topology spot checks, determinism and validation sentinels.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpar/builder"
	"github.com/katalvlaran/lvpar/core"
)

var directed = []core.GraphOption{core.WithDirected(true)}

// TestBuilders_Functional runs table-driven checks for each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		gopts  []core.GraphOption
		ctor   builder.Constructor
		wantV  int
		wantE  int
		checks [][2]string // edges that must exist
	}{
		{"Path(4)", nil, builder.Path(4), 4, 3, [][2]string{{"0", "1"}, {"2", "3"}}},
		{"Cycle(5)", nil, builder.Cycle(5), 5, 5, [][2]string{{"4", "0"}}},
		{"Star(4)", nil, builder.Star(4), 4, 3, [][2]string{{builder.StarCenter, "2"}}},
		{"Complete(4)", nil, builder.Complete(4), 4, 6, [][2]string{{"3", "0"}}},
		{"Complete(3) directed", directed, builder.Complete(3), 3, 6, [][2]string{{"2", "0"}, {"0", "2"}}},
		{"RandomSparse(5,1)", nil, builder.RandomSparse(5, 1), 5, 10, nil},
		{"RandomSparse(5,0)", nil, builder.RandomSparse(5, 0), 5, 0, nil},
		{"RandomSparse(4,1) directed", directed, builder.RandomSparse(4, 1), 4, 12, nil},
		{"TransitiveTournament(4)", directed, builder.TransitiveTournament(4), 4, 6, [][2]string{{"0", "3"}}},
		{"RandomTournament(4,0)", directed, builder.RandomTournament(4, 0), 4, 6, [][2]string{{"3", "0"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range tc.checks {
				assert.True(t, g.HasEdge(e[0], e[1]), "missing %s→%s", e[0], e[1])
			}
			for _, e := range g.Edges() {
				w, ok := g.EdgeAttr(e.From, e.To, core.WeightAttr)
				assert.True(t, ok)
				assert.Equal(t, builder.DefaultEdgeWeight, w)
			}
		})
	}
}

// TestRandomTournament_IsTournament checks exactly one arc per pair.
func TestRandomTournament_IsTournament(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomTournament(12, 0.5))
	require.NoError(t, err)
	vs := g.Vertices()
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			assert.NotEqual(t, g.HasEdge(u, v), g.HasEdge(v, u), "pair %s,%s", u, v)
		}
	}
}

// TestDeterminism verifies identical edge sets and weights for equal seeds.
func TestDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 10)},
			builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(42), build(42)
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, e := range a.Edges() {
		wa, _ := a.EdgeAttr(e.From, e.To, core.WeightAttr)
		wb, ok := b.EdgeAttr(e.From, e.To, core.WeightAttr)
		require.True(t, ok)
		require.Equal(t, wa, wb)
		require.GreaterOrEqual(t, wa, 1.0)
		require.Less(t, wa, 10.0)
	}
}

// TestOptions covers ID schemes and a custom weight attribute.
func TestOptions(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn), builder.WithConstantWeight(3), builder.WithWeightAttr("cost")},
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	w, ok := g.EdgeAttr("A", "B", "cost")
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)
	_, ok = g.EdgeAttr("A", "B", core.WeightAttr)
	assert.False(t, ok)

	assert.Equal(t, "z", builder.AlphanumericIDFn(35))
	assert.Equal(t, "10", builder.AlphanumericIDFn(36))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
}

// TestValidation asserts sentinel errors.
func TestValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		gopts []core.GraphOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse p>1", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Tournament undirected", nil, builder.TransitiveTournament(3), builder.ErrUnsupportedGraphMode},
		{"RandomTournament no rng", directed, builder.RandomTournament(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
