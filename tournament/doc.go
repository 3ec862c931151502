// Package tournament decides reachability and strong connectivity in
// tournaments (directed graphs with exactly one arc between every pair of
// distinct vertices) using two-hop neighborhoods as closure certificates.
//
// Background
//
//	In a tournament, t is unreachable from s iff some vertex set S holds s,
//	excludes t, and is closed: every vertex outside S has an arc into every
//	vertex of S, so no arc leaves S. The closed two-hop neighborhoods
//	N(v) = {v} ∪ out(v) ∪ out(out(v)) cover every such certificate, so
//	they are the only candidates tested. Dropping v from N(v) loses some.
//
// Parallel computation
//
//   - Phase 1: neighborhoods for every vertex, over vertex chunks.
//   - Phase 2: the blocking test s ∈ S ∧ t ∉ S ∧ closed(S), over chunks of
//     the phase-1 output, AND-reduced.
//   - IsStronglyConnected replaces phase 2 by a closed-flag pass and then
//     checks every target chunk: v is reachable from all u iff no closed
//     neighborhood misses v.
//
// Vertex sets are fixed-width bit arrays (github.com/soniakeys/bits) over
// the index order of g.Vertices(), so closure tests cost O(n·n/64).
//
// Input is assumed to be a tournament; WithTournamentCheck validates it
// eagerly. Answers on other digraphs are unspecified.
package tournament
