// Package graphio loads and stores graphs as edge-list documents in YAML,
// JSON or TOML:
//
//	directed: true
//	nodes: [a, b, c]
//	edges:
//	  - {from: a, to: b, attrs: {weight: 2}}
//	  - {from: b, to: c}
//
// Every document is checked against a JSON schema before it becomes a
// core.Graph. Listed nodes may be isolated; edge endpoints are added
// implicitly.
package graphio

import (
	"errors"
	"fmt"
	"maps"

	"github.com/katalvlaran/lvpar/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for an unsupported format or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrDecode is returned when a document cannot be parsed.
	ErrDecode = errors.New("graphio: decode failed")

	// ErrInvalidDocument is returned when a document violates the schema
	// or cannot be turned into a graph.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)

// Document is the serialised form of a graph.
type Document struct {
	Directed bool      `json:"directed" yaml:"directed" toml:"directed"`
	Loops    bool      `json:"loops,omitempty" yaml:"loops,omitempty" toml:"loops,omitempty"`
	Nodes    []string  `json:"nodes,omitempty" yaml:"nodes,omitempty" toml:"nodes,omitempty"`
	Edges    []EdgeDoc `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty"`
}

// EdgeDoc is one edge with its numeric attributes.
type EdgeDoc struct {
	From  string             `json:"from" yaml:"from" toml:"from"`
	To    string             `json:"to" yaml:"to" toml:"to"`
	Attrs map[string]float64 `json:"attrs,omitempty" yaml:"attrs,omitempty" toml:"attrs,omitempty"`
}

// Graph validates d and builds the corresponding core.Graph.
func (d *Document) Graph() (*core.Graph, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	gopts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)
	for _, v := range d.Nodes {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: node %q: %w", ErrInvalidDocument, v, err)
		}
	}
	for i, e := range d.Edges {
		opts := make([]core.EdgeOption, 0, len(e.Attrs))
		for name, val := range e.Attrs {
			opts = append(opts, core.WithAttr(name, val))
		}
		if err := g.AddEdge(e.From, e.To, opts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document: every vertex in sorted order and
// every edge in insertion order.
func FromGraph(g *core.Graph) *Document {
	d := &Document{
		Directed: g.Directed(),
		Loops:    g.Looped(),
		Nodes:    g.Vertices(),
	}
	for _, e := range g.Edges() {
		ed := EdgeDoc{From: e.From, To: e.To}
		if len(e.Attrs) > 0 {
			ed.Attrs = maps.Clone(e.Attrs)
		}
		d.Edges = append(d.Edges, ed)
	}
	return d
}
