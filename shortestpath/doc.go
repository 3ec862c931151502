// Package shortestpath computes single-source shortest-path DAGs: for every
// vertex reached from a source s, the list of its predecessors on shortest
// paths, the number of shortest paths sigma, and the distance, plus the
// order in which vertices were settled (non-decreasing distance).
//
// What
//
//   - Unweighted: breadth-first search, every edge costs 1.
//   - Weighted:   Dijkstra on the named edge attribute with a lazy
//     min-heap; ties between equal distances are broken by push order
//     (first discovered first).
//   - SingleSource picks one of the two from Options.Weight.
//
// These are the building blocks of Brandes' betweenness algorithm: walking
// Result.Order backwards visits vertices in non-increasing distance.
//
// Weights
//
//	An edge without the named attribute costs Options.MissingWeight
//	(default 1). With Options.Strict the caller is expected to have run
//	CheckWeights first, and a missing attribute during traversal fails with
//	ErrMissingWeight. A negative weight met during traversal fails with
//	ErrNegativeWeight.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Unweighted: O(V + E) time, O(V + E) memory (predecessor lists).
//   - Weighted:   O((V + E) log V) time, O(V + E) memory.
package shortestpath
