package tournament

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvpar/core"
)

// index maps vertex IDs to bit positions and stores out-neighborhoods as
// bit rows. It is built once per call and shared read-only by workers.
type index struct {
	ids []string
	pos map[string]int
	out []bits.Bits
}

func newIndex(g core.Reader) (*index, error) {
	ids := g.Vertices()
	n := len(ids)
	ix := &index{
		ids: ids,
		pos: make(map[string]int, n),
		out: make([]bits.Bits, n),
	}
	for i, id := range ids {
		ix.pos[id] = i
	}
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("tournament: neighbors of %q: %w", id, err)
		}
		row := bits.New(n)
		for _, w := range nbrs {
			row.SetBit(ix.pos[w], 1)
		}
		ix.out[i] = row
	}

	return ix, nil
}

// neighborhood returns {v} ∪ out(v) ∪ out(out(v)).
func (ix *index) neighborhood(v int) bits.Bits {
	nb := bits.New(len(ix.ids))
	nb.Set(ix.out[v])
	nb.SetBit(v, 1)
	ix.out[v].IterateOnes(func(u int) bool {
		nb.Or(nb, ix.out[u])
		return true
	})
	return nb
}

// closed reports whether every vertex outside s has an arc into every
// vertex of s.
func (ix *index) closed(s bits.Bits) bool {
	var missing bits.Bits
	for u := range ix.ids {
		if s.Bit(u) == 1 {
			continue
		}
		missing.AndNot(s, ix.out[u])
		if !missing.AllZeros() {
			return false
		}
	}
	return true
}

// names renders a vertex set as IDs in index order.
func (ix *index) names(s bits.Bits) []string {
	out := make([]string, 0, s.OnesCount())
	s.IterateOnes(func(i int) bool {
		out = append(out, ix.ids[i])
		return true
	})
	return out
}

// IsTournament reports whether g is directed, loop-free, and has exactly
// one arc between every pair of distinct vertices.
// Complexity: O(V²).
func IsTournament(g core.Reader) bool {
	if g == nil || !g.Directed() {
		return false
	}
	vs := g.Vertices()
	for i, u := range vs {
		if g.HasEdge(u, u) {
			return false
		}
		for _, v := range vs[i+1:] {
			if g.HasEdge(u, v) == g.HasEdge(v, u) {
				return false
			}
		}
	}
	return true
}

// validate runs the eager checks shared by every query.
func validate(g core.Reader, o Options) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Directed() {
		return ErrNotDirected
	}
	if o.CheckTournament && !IsTournament(g) {
		return ErrNotTournament
	}
	return nil
}
