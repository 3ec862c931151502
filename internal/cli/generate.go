package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpar/builder"
	"github.com/katalvlaran/lvpar/core"
	"github.com/katalvlaran/lvpar/graphio"
)

// generators maps a KIND argument to its constructor and whether it needs
// a directed graph.
var generators = map[string]struct {
	ctor     func(n int, p float64) builder.Constructor
	directed bool
}{
	"path":                  {func(n int, _ float64) builder.Constructor { return builder.Path(n) }, false},
	"cycle":                 {func(n int, _ float64) builder.Constructor { return builder.Cycle(n) }, false},
	"star":                  {func(n int, _ float64) builder.Constructor { return builder.Star(n) }, false},
	"complete":              {func(n int, _ float64) builder.Constructor { return builder.Complete(n) }, false},
	"random":                {builder.RandomSparse, false},
	"transitive-tournament": {func(n int, _ float64) builder.Constructor { return builder.TransitiveTournament(n) }, true},
	"random-tournament":     {builder.RandomTournament, true},
}

func generatorKinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n          int
		p          float64
		seed       int64
		directed   bool
		weightMin  float64
		weightMax  float64
		weightAttr string
		out        string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "generate KIND",
		Short: "Write a fixture graph (" + strings.Join(generatorKinds(), ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q (want one of %s)", args[0], strings.Join(generatorKinds(), ", "))
			}
			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightAttr(weightAttr),
			}
			if cmd.Flags().Changed("weight-min") || cmd.Flags().Changed("weight-max") {
				if weightMin < 0 || weightMax < weightMin {
					return fmt.Errorf("need 0 ≤ weight-min ≤ weight-max, got %g, %g", weightMin, weightMax)
				}
				bopts = append(bopts, builder.WithUniformWeight(weightMin, weightMax))
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(directed || gen.directed)},
				bopts,
				gen.ctor(n, p),
			)
			if err != nil {
				return err
			}
			a.log.WithField("kind", args[0]).WithField("edges", g.EdgeCount()).Debug("generated graph")

			if out != "" {
				return graphio.Save(a.fs, out, g)
			}
			f, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}
			return graphio.Encode(a.out, g, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&n, "nodes", "n", 10, "number of vertices")
	fl.Float64VarP(&p, "probability", "p", 0.5, "edge (or orientation) probability for random kinds")
	fl.Int64Var(&seed, "seed", 1, "RNG seed")
	fl.BoolVar(&directed, "directed", false, "build a directed graph (implied for tournaments)")
	fl.Float64Var(&weightMin, "weight-min", builder.DefaultEdgeWeight, "lower bound of uniform edge weights")
	fl.Float64Var(&weightMax, "weight-max", builder.DefaultEdgeWeight, "upper bound of uniform edge weights")
	fl.StringVar(&weightAttr, "weight-attr", core.WeightAttr, "edge attribute receiving the weight")
	fl.StringVarP(&out, "out", "O", "", "output file; format from extension (stdout if empty)")
	fl.StringVarP(&format, "format", "f", string(graphio.FormatYAML), "stdout format: yaml, json, toml")
	return cmd
}
