package centrality

import "github.com/katalvlaran/lvpar/shortestpath"

// Scores maps every vertex of a graph to its (partial) betweenness.
type Scores map[string]float64

// NewScores returns a zero entry for every vertex.
func NewScores(vertices []string) Scores {
	s := make(Scores, len(vertices))
	for _, v := range vertices {
		s[v] = 0
	}
	return s
}

// Add adds other into s element-wise. Keys missing from s are created.
func (s Scores) Add(other Scores) {
	for v, x := range other {
		s[v] += x
	}
}

// Reduce sums per-chunk partial scores, in order, into a fresh map keyed by
// every vertex. Zero parts yield all-zero scores.
func Reduce(vertices []string, parts []Scores) Scores {
	total := NewScores(vertices)
	for _, p := range parts {
		total.Add(p)
	}
	return total
}

// dependencies walks res.Order backwards and returns delta, the dependency
// of the source on every reached vertex:
//
//	delta[v] = Σ_{w : v ∈ Pred[w]} sigma[v]/sigma[w] · (1 + delta[w])
func dependencies(res *shortestpath.Result, visit func(w string, delta float64)) {
	delta := make(map[string]float64, len(res.Order))
	for i := len(res.Order) - 1; i >= 0; i-- {
		w := res.Order[i]
		coeff := (1 + delta[w]) / res.Sigma[w]
		for _, v := range res.Pred[w] {
			delta[v] += res.Sigma[v] * coeff
		}
		if w != res.Source {
			visit(w, delta[w])
		}
	}
}

// AccumulateBasic adds the dependencies of res.Source to scores for every
// reached vertex other than the source.
func AccumulateBasic(scores Scores, res *shortestpath.Result) {
	dependencies(res, func(w string, d float64) {
		scores[w] += d
	})
}

// AccumulateEndpoints is AccumulateBasic that also credits path
// endpoints: the source gains one per other reached vertex, and every
// reached vertex gains one for the path ending at it.
func AccumulateEndpoints(scores Scores, res *shortestpath.Result) {
	scores[res.Source] += float64(len(res.Order) - 1)
	dependencies(res, func(w string, d float64) {
		scores[w] += d + 1
	})
}
