package parallel

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Task computes the result for one chunk. It must treat everything it
// did not allocate itself as read-only.
type Task[C, R any] func(ctx context.Context, chunk C) (R, error)

// Map runs fn once per chunk with at most cfg.EffectiveWorkers() chunks in
// flight and returns the results in chunk order.
//
// The first failing chunk (error or panic) cancels the batch: chunks not
// yet started are skipped, and Map returns an error wrapping
// ErrComputationFailure together with the task's own error. No partial
// results are returned. A cancelled ctx is reported as ctx.Err().
//
// With one effective worker every chunk runs inline on the caller's
// goroutine, in order.
func Map[C, R any](ctx context.Context, cfg Config, chunks iter.Seq[C], fn Task[C, R]) ([]R, error) {
	workers := cfg.EffectiveWorkers()
	log := cfg.Log(ctx).WithField("workers", workers)

	var (
		slots []*R
		err   error
	)
	if workers == 1 {
		slots, err = runInline(ctx, chunks, fn)
	} else {
		slots, err = runPooled(ctx, workers, chunks, fn)
	}
	if err != nil {
		if !errors.Is(err, errShortCircuit) {
			log.WithError(err).Debug("parallel: batch failed")
		}
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]R, len(slots))
	for i, r := range slots {
		out[i] = *r
	}
	log.WithField("chunks", len(out)).Debug("parallel: batch done")

	return out, nil
}

// All reports whether pred holds for every chunk (logical AND). The batch
// stops dispatching new chunks as soon as one chunk reports false.
// Zero chunks yield true.
//
// A false answer wins over failures in chunks that never ran, so when a
// batch holds both a false chunk and a failing chunk the outcome follows
// scheduling: with one worker the earlier chunk decides, with several the
// first one to finish does. A false result is always a true statement about
// the chunks that ran; callers needing every failure reported should use
// Map.
func All[C any](ctx context.Context, cfg Config, chunks iter.Seq[C], pred Task[C, bool]) (bool, error) {
	_, err := Map(ctx, cfg, chunks, func(ctx context.Context, chunk C) (struct{}, error) {
		ok, err := pred(ctx, chunk)
		if err != nil {
			return struct{}{}, err
		}
		if !ok {
			return struct{}{}, errShortCircuit
		}
		return struct{}{}, nil
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errShortCircuit):
		return false, nil
	default:
		return false, err
	}
}

func runInline[C, R any](ctx context.Context, chunks iter.Seq[C], fn Task[C, R]) ([]*R, error) {
	var slots []*R
	i := 0
	for chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := runChunk(ctx, i, chunk, fn)
		if err != nil {
			return nil, err
		}
		slots = append(slots, &r)
		i++
	}

	return slots, nil
}

func runPooled[C, R any](ctx context.Context, workers int, chunks iter.Seq[C], fn Task[C, R]) ([]*R, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	// Each task owns its slot; the slice header is only touched here.
	var slots []*R
	i := 0
	for chunk := range chunks {
		if gctx.Err() != nil {
			break
		}
		slot := new(R)
		slots = append(slots, slot)
		idx := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := runChunk(gctx, idx, chunk, fn)
			if err != nil {
				return err
			}
			*slot = r
			return nil
		})
		i++
	}
	if err := g.Wait(); err != nil {
		// A cancelled parent surfaces as its own error, not a task failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	return slots, nil
}

// runChunk invokes fn, turning errors and panics into ErrComputationFailure.
func runChunk[C, R any](ctx context.Context, idx int, chunk C, fn Task[C, R]) (r R, err error) {
	defer func() {
		if p := recover(); p != nil {
			Logger(ctx).WithFields(logrus.Fields{"chunk": idx, "stack": string(debug.Stack())}).Debug("parallel: task panicked")
			err = fmt.Errorf("%w: chunk %d panicked: %v", ErrComputationFailure, idx, p)
		}
	}()

	r, err = fn(ctx, chunk)
	if err == nil {
		return r, nil
	}
	if errors.Is(err, errShortCircuit) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return r, err
	}

	return r, fmt.Errorf("%w: chunk %d: %w", ErrComputationFailure, idx, err)
}
