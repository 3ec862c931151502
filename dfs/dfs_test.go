package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpar/builder"
	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/dfs"
	"github.com/katalvlaran/lvpar/parallel"
)

// buildChain creates a directed chain N0→N1→…→N(n-1).
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1)))
	}
	return g
}

func TestDFS_Validation(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	res, err = dfs.DFS(core.NewGraph(), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, parallel.ErrInvalidParameter)
}

func TestDFS_ChainOrder(t *testing.T) {
	g := buildChain(t, 4)
	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Equal(t, []string{"N3", "N2", "N1", "N0"}, res.Order)
	assert.Equal(t, 3, res.Depth["N3"])
	assert.Equal(t, "N2", res.Parent["N3"])
	_, isChild := res.Parent["N0"]
	assert.False(t, isChild)
}

func TestDFS_Options(t *testing.T) {
	g := buildChain(t, 5)

	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Visited, 3)

	res, err = dfs.DFS(g, "N0", dfs.WithFilterNeighbor(func(id string) bool { return id != "N2" }))
	require.NoError(t, err)
	assert.Len(t, res.Visited, 2)
	assert.Equal(t, 1, res.SkippedNeighbors)

	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Visited, 5)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N3" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReachable(t *testing.T) {
	ctx := context.Background()
	g := buildChain(t, 4)

	ok, err := dfs.Reachable(ctx, g, "N0", "N3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dfs.Reachable(ctx, g, "N3", "N0")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dfs.Reachable(ctx, g, "N2", "N2")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = dfs.Reachable(ctx, g, "N0", "Z")
	assert.ErrorIs(t, err, dfs.ErrTargetNotFound)
	_, err = dfs.Reachable(ctx, g, "Z", "N0")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestStronglyConnected(t *testing.T) {
	ctx := context.Background()

	g := buildChain(t, 4)
	ok, err := dfs.StronglyConnected(ctx, g)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.AddEdge("N3", "N0"))
	ok, err = dfs.StronglyConnected(ctx, g)
	require.NoError(t, err)
	assert.True(t, ok)

	// Every vertex reaches N0 but N0 reaches nothing.
	star := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, star.AddEdge(v, "N0"))
	}
	ok, err = dfs.StronglyConnected(ctx, star)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dfs.StronglyConnected(ctx, core.NewGraph(core.WithDirected(true)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStronglyConnected_Cycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	ok, err := dfs.StronglyConnected(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, ok)
}
