package parallel

import (
	"iter"
	"slices"
)

// ChunkSize returns max(n / workers, 1) using integer division.
// A non-positive workers value is treated as 1.
func ChunkSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	return max(n/workers, 1)
}

// Chunks lazily groups items from seq into contiguous slices of size
// items; the final slice holds the remainder. Every chunk is a fresh
// slice, so consumers may hand it to another goroutine. A size below 1
// is treated as 1.
func Chunks[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size < 1 {
		size = 1
	}
	return func(yield func([]T) bool) {
		buf := make([]T, 0, size)
		for item := range seq {
			buf = append(buf, item)
			if len(buf) == size {
				if !yield(buf) {
					return
				}
				buf = make([]T, 0, size)
			}
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}
}

// ChunkSlice is Chunks over a materialised slice.
func ChunkSlice[T any](items []T, size int) iter.Seq[[]T] {
	return Chunks(slices.Values(items), size)
}

// Flatten yields the items of every chunk in order; it is the inverse of
// Chunks and lets a stage feed its per-chunk outputs to the next stage.
func Flatten[T any](chunks [][]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range chunks {
			for _, item := range c {
				if !yield(item) {
					return
				}
			}
		}
	}
}
