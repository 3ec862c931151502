package centrality

import (
	"fmt"
	"math/rand"
)

// Sampler chooses k distinct sources out of nodes without replacement.
// Implementations must be deterministic for equal inputs and must not
// modify nodes.
type Sampler interface {
	Sample(nodes []string, k int) ([]string, error)
}

// SeededSampler draws with a math/rand source seeded by Seed. It is a
// value type holding no RNG state: every call starts from Seed, so the
// same seed over the same node order always yields the same sample.
type SeededSampler struct {
	Seed int64
}

// Sample runs a partial Fisher–Yates shuffle over a copy of nodes and
// returns the first k entries.
// Complexity: O(n) time and space.
func (s SeededSampler) Sample(nodes []string, k int) ([]string, error) {
	if k < 0 || k > len(nodes) {
		return nil, fmt.Errorf("%w: k=%d, |V|=%d", ErrSampleSize, k, len(nodes))
	}
	rng := rand.New(rand.NewSource(s.Seed))
	pool := make([]string, len(nodes))
	copy(pool, nodes)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k], nil
}
