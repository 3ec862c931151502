package centrality

// RescaleParams describes how raw accumulated scores were produced.
type RescaleParams struct {
	Normalized bool
	Directed   bool
	Endpoints  bool

	// K is the number of sampled sources; 0 means all vertices were sources.
	K int
}

// Rescale scales raw Brandes sums in place and returns scores.
//
//	normalized, endpoints:     1/(n(n-1))       (none if n < 2)
//	normalized, no endpoints:  1/((n-1)(n-2))   (none if n ≤ 2)
//	unnormalized, undirected:  1/2              (each pair was counted twice)
//	unnormalized, directed:    none
//
// When K > 0 the factor is multiplied by n/K to extrapolate from the
// sampled sources to all of them.
func Rescale(scores Scores, n int, p RescaleParams) Scores {
	var (
		scale float64
		ok    bool
	)
	nf := float64(n)
	switch {
	case p.Normalized && p.Endpoints:
		if n >= 2 {
			scale, ok = 1/(nf*(nf-1)), true
		}
	case p.Normalized:
		if n > 2 {
			scale, ok = 1/((nf-1)*(nf-2)), true
		}
	case !p.Directed:
		scale, ok = 0.5, true
	}
	if !ok {
		return scores
	}
	if p.K > 0 {
		scale = scale * nf / float64(p.K)
	}
	for v := range scores {
		scores[v] *= scale
	}

	return scores
}
