package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpar/core"
)

// GraphSuite exercises vertex/edge lifecycle and the Reader queries.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestAddVertex checks validation and idempotence.
func (s *GraphSuite) TestAddVertex() {
	g := core.NewGraph()
	require.ErrorIs(s.T(), g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("A"))
	require.Equal(s.T(), 1, g.VertexCount())
	require.True(s.T(), g.HasVertex("A"))
	require.False(s.T(), g.HasVertex(""))
}

// TestUndirectedMirror verifies both orientations are visible and counted once.
func (s *GraphSuite) TestUndirectedMirror() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge("A", "B", core.WithWeight(3)))
	require.True(s.T(), g.HasEdge("A", "B"))
	require.True(s.T(), g.HasEdge("B", "A"))
	require.Equal(s.T(), 1, g.EdgeCount())

	w, ok := g.EdgeAttr("B", "A", core.WeightAttr)
	require.True(s.T(), ok)
	require.Equal(s.T(), 3.0, w)

	err := g.AddEdge("B", "A")
	require.ErrorIs(s.T(), err, core.ErrEdgeExists)
}

// TestDirectedNeighbors checks that only out-neighbors are reported.
func (s *GraphSuite) TestDirectedNeighbors() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge("B", "A"))
	require.NoError(s.T(), g.AddEdge("B", "C"))
	require.NoError(s.T(), g.AddEdge("A", "B"))

	nbrs, err := g.NeighborIDs("B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "C"}, nbrs)

	nbrs, err = g.NeighborIDs("C")
	require.NoError(s.T(), err)
	require.Empty(s.T(), nbrs)

	_, err = g.NeighborIDs("Z")
	require.True(s.T(), errors.Is(err, core.ErrVertexNotFound))
}

// TestLoops verifies the loop policy.
func (s *GraphSuite) TestLoops() {
	g := core.NewGraph()
	require.ErrorIs(s.T(), g.AddEdge("A", "A"), core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithLoops())
	require.NoError(s.T(), gl.AddEdge("A", "A"))
	require.True(s.T(), gl.Looped())
}

// TestRemoveEdge covers removal of directed and undirected edges.
func (s *GraphSuite) TestRemoveEdge() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge("0", "3"))
	require.NoError(s.T(), g.RemoveEdge("0", "3"))
	require.False(s.T(), g.HasEdge("0", "3"))
	require.ErrorIs(s.T(), g.RemoveEdge("0", "3"), core.ErrEdgeNotFound)
	require.NoError(s.T(), g.AddEdge("3", "0"))
	require.True(s.T(), g.HasEdge("3", "0"))

	u := core.NewGraph()
	require.NoError(s.T(), u.AddEdge("X", "Y"))
	require.NoError(s.T(), u.RemoveEdge("Y", "X"))
	require.False(s.T(), u.HasEdge("X", "Y"))
	require.Zero(s.T(), u.EdgeCount())
}

// TestReverse flips a directed edge and keeps its attributes.
func (s *GraphSuite) TestReverse() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge("0", "3", core.WithWeight(4)))
	require.NoError(s.T(), g.Reverse("0", "3"))
	require.False(s.T(), g.HasEdge("0", "3"))
	require.True(s.T(), g.HasEdge("3", "0"))
	w, ok := g.EdgeAttr("3", "0", core.WeightAttr)
	require.True(s.T(), ok)
	require.Equal(s.T(), 4.0, w)
	require.Equal(s.T(), 1, g.EdgeCount())
	require.ErrorIs(s.T(), g.Reverse("0", "3"), core.ErrEdgeNotFound)

	require.NoError(s.T(), g.AddEdge("0", "3"))
	require.ErrorIs(s.T(), g.Reverse("0", "3"), core.ErrEdgeExists)
}

// TestVerticesSorted checks deterministic iteration independent of insertion order.
func (s *GraphSuite) TestVerticesSorted() {
	g := core.NewGraph()
	for _, id := range []string{"d", "b", "a", "c"} {
		require.NoError(s.T(), g.AddVertex(id))
	}
	require.Equal(s.T(), []string{"a", "b", "c", "d"}, g.Vertices())
}

// TestEdgesInsertionOrder checks Edges() follows edge sequence numbers.
func (s *GraphSuite) TestEdgesInsertionOrder() {
	g := core.NewGraph(core.WithDirected(true))
	for i, p := range [][2]string{{"z", "y"}, {"a", "b"}, {"m", "n"}, {"b", "a"}, {"q", "r"}, {"r", "q"}, {"c", "d"}, {"d", "c"}, {"e", "f"}, {"f", "e"}, {"g", "h"}} {
		require.NoError(s.T(), g.AddEdge(p[0], p[1]), "edge %d", i)
	}
	edges := g.Edges()
	require.Len(s.T(), edges, 11)
	require.Equal(s.T(), "z", edges[0].From)
	require.Equal(s.T(), "g", edges[10].From)
}

// TestCloneIsDeep ensures the clone does not share attribute maps or adjacency.
func (s *GraphSuite) TestCloneIsDeep() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge("A", "B", core.WithAttr("cost", 2)))

	c := g.Clone()
	require.True(s.T(), c.Directed())
	require.NoError(s.T(), c.RemoveEdge("A", "B"))
	require.True(s.T(), g.HasEdge("A", "B"))

	v, ok := g.EdgeAttr("A", "B", "cost")
	require.True(s.T(), ok)
	require.Equal(s.T(), 2.0, v)

	_, ok = g.EdgeAttr("A", "B", "missing")
	require.False(s.T(), ok)
}
