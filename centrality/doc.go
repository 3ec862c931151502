// Package centrality computes exact (and source-sampled) shortest-path
// betweenness centrality with Brandes' algorithm, split across a worker
// pool by source vertex.
//
// What
//
//	Betweenness of v is the sum, over ordered pairs (s,t) with s ≠ v ≠ t, of
//	the fraction of shortest s→t paths passing through v. For each source
//	s, a single-source traversal (package shortestpath) yields predecessor
//	lists and path counts; walking the settled order backwards accumulates
//	the dependency of s on every vertex.
//
// Parallel computation
//
//	The sources are cut into chunks of max(|sources|/workers, 1). Each
//	chunk is handed to a worker that owns a zero-initialised Scores map for
//	every vertex of the graph and accumulates all of its sources into it.
//	The per-chunk maps are then summed element-wise, in chunk order, and
//	rescaled exactly once. Summation is commutative and associative, so the
//	result does not depend on the worker count (up to floating-point
//	rounding).
//
// Options
//
//   - WithK(k):            estimate from k sampled sources (1 ≤ k ≤ |V|).
//   - WithSeed(seed):      seed of the default sampler.
//   - WithSampler(s):      inject a custom Sampler.
//   - WithNormalized(b):   normalise (default true).
//   - WithWeight(name):    Dijkstra on the named edge attribute.
//   - WithStrictWeight():  fail if any edge lacks the weight attribute.
//   - WithEndpoints():     count path endpoints.
//   - WithWorkers(n):      worker request (see parallel.ResolveWorkers).
//   - WithConfig(cfg):     full parallel configuration.
//
// Errors
//
//   - ErrGraphNil, ErrSampleSize, ErrOptionViolation and
//     shortestpath.ErrMissingWeight (strict) wrap parallel.ErrInvalidParameter
//     and are reported before any work starts.
//   - Failures inside a worker (e.g. shortestpath.ErrNegativeWeight) wrap
//     parallel.ErrComputationFailure; no partial scores are returned.
package centrality
