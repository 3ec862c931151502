package graphio_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/graphio"
)

const tournamentYAML = `
directed: true
nodes: ["0", "1", "2", "3"]
edges:
  - {from: "1", to: "0"}
  - {from: "1", to: "3", attrs: {weight: 2.5}}
  - {from: "2", to: "3"}
`

func TestDecodeYAML(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader(tournamentYAML), graphio.FormatYAML)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	w, ok := g.EdgeAttr("1", "3", core.WeightAttr)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
	assert.False(t, g.HasEdge("3", "1"))
}

func TestDecodeTOMLAndJSON(t *testing.T) {
	tomlDoc := `
directed = false
nodes = ["a", "b", "c", "lonely"]

[[edges]]
from = "a"
to = "b"

[[edges]]
from = "b"
to = "c"
[edges.attrs]
weight = 4.5
`
	g, err := graphio.Decode(strings.NewReader(tomlDoc), graphio.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.True(t, g.HasEdge("c", "b"))
	w, ok := g.EdgeAttr("c", "b", core.WeightAttr)
	require.True(t, ok)
	assert.Equal(t, 4.5, w)

	jsonDoc := `{"directed": true, "edges": [{"from": "x", "to": "y", "attrs": {"cost": 3}}]}`
	g, err = graphio.Decode(strings.NewReader(jsonDoc), graphio.FormatJSON)
	require.NoError(t, err)
	c, ok := g.EdgeAttr("x", "y", "cost")
	require.True(t, ok)
	assert.Equal(t, 3.0, c)
}

// TestRoundTrip saves and reloads a graph in every format on an in-memory fs.
func TestRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("iso"))
	require.NoError(t, g.AddEdge("a", "b", core.WithWeight(1.5)))
	require.NoError(t, g.AddEdge("b", "c", core.WithAttr("cap", 7)))

	for _, path := range []string{"g.yaml", "g.yml", "g.json", "g.toml"} {
		t.Run(path, func(t *testing.T) {
			require.NoError(t, graphio.Save(fs, path, g))
			back, err := graphio.Load(fs, path)
			require.NoError(t, err)
			assert.Equal(t, graphio.FromGraph(g), graphio.FromGraph(back))
		})
	}
}

func TestInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		f    graphio.Format
		want error
	}{
		{"empty endpoint", `{"edges": [{"from": "", "to": "b"}]}`, graphio.FormatJSON, graphio.ErrInvalidDocument},
		{"duplicate nodes", "nodes: [a, a]", graphio.FormatYAML, graphio.ErrInvalidDocument},
		{"loop not allowed", "edges: [{from: a, to: a}]", graphio.FormatYAML, graphio.ErrInvalidDocument},
		{"duplicate edge", "edges: [{from: a, to: b}, {from: b, to: a}]", graphio.FormatYAML, graphio.ErrInvalidDocument},
		{"unknown field", "vertices: [a]", graphio.FormatYAML, graphio.ErrDecode},
		{"bad toml", "directed = ", graphio.FormatTOML, graphio.ErrDecode},
		{"bad format", "{}", graphio.Format("xml"), graphio.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Decode(strings.NewReader(tc.doc), tc.f)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := graphio.Load(afero.NewMemMapFs(), "graph.xml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
	_, err = graphio.Load(afero.NewMemMapFs(), "missing.yaml")
	require.Error(t, err)
}

func TestLoopsAllowed(t *testing.T) {
	g, err := graphio.Decode(strings.NewReader("loops: true\nedges: [{from: a, to: a}]"), graphio.FormatYAML)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "a"))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]graphio.Format{"YAML": graphio.FormatYAML, ".yml": graphio.FormatYAML, "json": graphio.FormatJSON, "Toml": graphio.FormatTOML} {
		got, err := graphio.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
