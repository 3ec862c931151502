package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpar/centrality"
	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/dfs"
	"github.com/katalvlaran/lvpar/graphio"
	"github.com/katalvlaran/lvpar/parallel"
	"github.com/katalvlaran/lvpar/tournament"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func (a *app) loadGraph(path string) (*core.Graph, error) {
	g, err := graphio.Load(a.fs, path)
	if err != nil {
		return nil, err
	}
	a.log.WithField("vertices", g.VertexCount()).WithField("edges", g.EdgeCount()).Debugf("loaded %s", path)
	return g, nil
}

func newBetweennessCmd(a *app) *cobra.Command {
	var (
		k            int
		seed         int64
		weight       string
		strictWeight bool
		endpoints    bool
		normalized   bool
		top          int
		output       string
	)
	cmd := &cobra.Command{
		Use:   "betweenness GRAPH",
		Short: "Compute betweenness centrality for every vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			opts := []centrality.Option{
				centrality.WithNormalized(normalized),
				centrality.WithWeight(weight),
				centrality.WithSeed(seed),
			}
			if cmd.Flags().Changed("k") {
				opts = append(opts, centrality.WithK(k))
			}
			if strictWeight {
				opts = append(opts, centrality.WithStrictWeight())
			}
			if endpoints {
				opts = append(opts, centrality.WithEndpoints())
			}
			scores, err := a.backend.Betweenness(a.ctx, g, opts...)
			if err != nil {
				return err
			}
			return a.writeScores(scores, top, output)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&k, "k", "k", 0, "estimate from k sampled sources (1..|V|)")
	f.Int64Var(&seed, "seed", centrality.DefaultSeed, "sampling seed (with --k)")
	f.StringVar(&weight, "weight", "", "edge attribute used as distance (unweighted if empty)")
	f.BoolVar(&strictWeight, "strict-weight", false, "fail if an edge lacks the weight attribute")
	f.BoolVar(&endpoints, "endpoints", false, "count path endpoints")
	f.BoolVar(&normalized, "normalized", true, "normalise scores")
	f.IntVar(&top, "top", 0, "print only the n highest scores (text output)")
	f.StringVarP(&output, "output", "o", outputText, "output format: text, json, yaml")
	return cmd
}

type scoreRow struct {
	Vertex string
	Score  float64
}

// writeScores prints scores sorted by descending score, then vertex ID.
func (a *app) writeScores(scores map[string]float64, top int, output string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	case outputYAML:
		return a.writeYAML(scores)
	case outputText:
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	rows := make([]scoreRow, 0, len(scores))
	for v, s := range scores {
		rows = append(rows, scoreRow{v, s})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Vertex < rows[j].Vertex
	})
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERTEX\tBETWEENNESS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.6f\n", r.Vertex, r.Score)
	}
	return tw.Flush()
}

func newReachableCmd(a *app) *cobra.Command {
	var check, verify bool
	cmd := &cobra.Command{
		Use:   "reachable GRAPH SOURCE TARGET",
		Short: "Report whether TARGET is reachable from SOURCE in a tournament",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			ok, err := a.backend.IsReachable(a.ctx, g, args[1], args[2], tournamentOpts(check)...)
			if err != nil {
				return err
			}
			if verify {
				want, err := dfs.Reachable(a.ctx, g, args[1], args[2])
				if err := a.crossCheck("reachable", ok, want, err); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(a.out, ok)
			return err
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "verify the graph is a tournament first")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the answer with a sequential DFS")
	return cmd
}

func newStrongCmd(a *app) *cobra.Command {
	var check, verify bool
	cmd := &cobra.Command{
		Use:   "strong GRAPH",
		Short: "Report whether a tournament is strongly connected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			ok, err := a.backend.IsStronglyConnected(a.ctx, g, tournamentOpts(check)...)
			if err != nil {
				return err
			}
			if verify {
				want, err := dfs.StronglyConnected(a.ctx, g)
				if err := a.crossCheck("strong", ok, want, err); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(a.out, ok)
			return err
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "verify the graph is a tournament first")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the answer with a sequential DFS")
	return cmd
}

func newNeighborhoodsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighborhoods GRAPH",
		Short: "Print the two-hop neighborhood of every vertex of a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			nb, err := a.backend.TwoHopNeighborhoods(a.ctx, g)
			if err != nil {
				return err
			}
			return a.writeYAML(nb)
		},
	}
	return cmd
}

func (a *app) writeYAML(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// crossCheck compares a tournament answer with the DFS reference.
func (a *app) crossCheck(op string, got, want bool, err error) error {
	if err != nil {
		return fmt.Errorf("%s: reference search: %w", op, err)
	}
	if got != want {
		return fmt.Errorf("%w: %s: parallel answer %t, reference %t", parallel.ErrComputationFailure, op, got, want)
	}
	a.log.WithField("op", op).Debug("reference search agrees")
	return nil
}

func tournamentOpts(check bool) []tournament.Option {
	if check {
		return []tournament.Option{tournament.WithTournamentCheck()}
	}
	return nil
}
