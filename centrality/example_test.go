package centrality_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpar/centrality"
	"github.com/katalvlaran/lvpar/core"
)

// ExampleBetweenness scores two triangles joined by a bridge.
func ExampleBetweenness() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"1", "0"}, {"1", "2"}, {"2", "0"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"3", "5"}} {
		_ = g.AddEdge(e[0], e[1])
	}

	scores, err := centrality.Betweenness(context.Background(), g, centrality.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Printf("%s: %.2f\n", v, scores[v])
	}
	// Output:
	// 0: 0.00
	// 1: 0.00
	// 2: 0.60
	// 3: 0.60
	// 4: 0.00
	// 5: 0.00
}
