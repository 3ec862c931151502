// Package lvpar is an in-memory graph analytics library whose heavy
// queries are split into chunks and run on a bounded worker pool.
//
// What is in here?
//
//	• Betweenness centrality (Brandes), exact or sampled over k sources,
//	  unweighted or weighted, with optional endpoint counting
//	• Tournament reachability and strong connectivity, decided from
//	  two-hop neighborhoods without a full graph search
//	• A sequential DFS reference for cross-checking the parallel answers
//	• Fixture builders, YAML/JSON/TOML graph files and the lvpar CLI
//
// Layout:
//
//	core/          thread-safe Graph and the read-only Reader view
//	parallel/      worker resolution, chunking, Map and All batches
//	shortestpath/  single-source BFS/Dijkstra with σ counts and predecessors
//	centrality/    Betweenness, accumulation, rescaling, source sampling
//	tournament/    IsReachable, IsStronglyConnected, TwoHopNeighborhoods
//	dfs/           sequential depth-first search and reference answers
//	backend/       parallel and sequential strategies behind one interface
//	builder/       Path, Cycle, Star, Complete, random graphs, tournaments
//	graphio/       graph documents on disk (afero), schema validation
//	cmd/lvpar      command-line entry point
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "C")
//	scores, _ := centrality.Betweenness(ctx, g, centrality.WithWorkers(4))
//	// scores["B"] == 1
//
// Every engine call is a fork-join batch: the caller blocks until all
// chunks finish, the first failing chunk cancels the rest, and the result
// never depends on the worker count.
package lvpar
