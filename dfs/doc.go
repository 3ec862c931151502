// Package dfs implements sequential depth-first search over a core.Reader.
//
// What:
//
//   - DFS(g, start, opts...): single-source or forest traversal with
//     pre-order hooks, depth limiting, neighbor filtering and cancellation.
//   - Reachable(ctx, g, s, t): plain search answer to "is there a directed
//     path s→t?" for any graph, tournament or not.
//   - StronglyConnected(ctx, g): forward and transposed search from one
//     root; every vertex must be hit both times.
//
// These are the single-threaded reference answers the chunk-parallel
// tournament engine is checked against (lvpar reachable --verify).
//
// Complexity:
//
//   - DFS, Reachable: O(V + E) time, O(V) memory.
//   - StronglyConnected: O(V + E) time, O(V + E) memory for the transpose.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if the start (or s) is missing.
//   - ErrTargetNotFound       if t is missing.
//   - ctx.Err()               if the context is cancelled mid-search.
package dfs
