// Package builder assembles deterministic fixture graphs for the analytics
// packages, the CLI generate command and benchmarks.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): create a core.Graph and apply
//     constructors in order.
//   - Topologies: Path, Cycle, Star, Complete, RandomSparse.
//   - Tournaments: TransitiveTournament, RandomTournament.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, AlphanumericIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical graph.
//   - Every edge carries the weight attribute (core.WeightAttr unless
//     overridden with WithWeightAttr), drawn from the configured WeightFn.
//   - Invalid sizes and probabilities return sentinel errors; option
//     constructors panic on meaningless input (nil functions, negative bounds).
package builder
