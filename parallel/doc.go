// Package parallel is the chunk-parallel map/reduce engine shared by the
// lvpar analytics.
//
// What
//
//   - ResolveWorkers turns a worker-count request into an effective count:
//     negative values count back from the available CPUs (-1 = all CPUs,
//     -2 = all but one, ...), zero means all CPUs, positive values are used
//     as given. The result is never below 1.
//   - ChunkSize/Chunks/ChunkSlice split an ordered sequence into contiguous
//     chunks of max(N/workers, 1) items, the last chunk holding the remainder.
//     Chunks is lazy over iter.Seq so the output of one stage can be re-chunked
//     by the next without materialising it.
//   - Map runs one function invocation per chunk on a bounded errgroup and
//     returns the results in chunk order. The first failure cancels the
//     batch and no partial result is returned. All is the boolean AND
//     reduction on top of it and stops early on the first false.
//
// Determinism
//
//	Results come back in submission order, so reductions over them are
//	independent of goroutine scheduling.
//
// Errors
//
//   - ErrInvalidParameter     caller error, detected before dispatch.
//   - ErrComputationFailure   a chunk task returned an error or panicked.
//
// Logging
//
//	Batches are logged at debug level through the logrus.FieldLogger in
//	Config, or the one attached to the context with WithLogger.
package parallel
