// Package scheduler implements weight-balanced batch scheduling of
// independent queries across a bounded worker pool (spec §4.6). It assigns
// queries to batches via greedy bin-packing, then executes every batch
// concurrently, isolating per-query failures from the rest of the batch.
package scheduler

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Job is a single unit of scheduled work: a weight estimate used for
// load balancing, and the work itself.
type Job[T any] interface {
	// Weight estimates the relative cost of running this job, used to
	// balance bins. Callers with no better estimate should return 1.0.
	Weight() float64
	// Run executes the job and returns its result or an error. Run must
	// not panic; a panicking job is the caller's bug, not the scheduler's
	// to recover from.
	Run(ctx context.Context) (T, error)
}

// Outcome pairs a job's original index (its position in the input slice)
// with either its result or its error, never both. Index lets callers
// that need submission order re-sort the response stream (spec §5
// "Ordering guarantees": completion order, not submission order, unless
// the caller tags inputs with an index — here the scheduler does that
// tagging for free).
type Outcome[T any] struct {
	Index  int
	Result T
	Err    error
}

// Run schedules jobs into workers batches via Schedule, then executes every
// batch concurrently (spec §4.6, §5). A per-query failure is captured into
// that job's Outcome.Err and never aborts the batch; only a context
// cancellation propagates as Run's returned error.
func Run[T any](ctx context.Context, jobs []Job[T], workers int) ([]Outcome[T], error) {
	batches := Schedule(jobs, workers)

	var mu sync.Mutex
	outcomes := make([]Outcome[T], 0, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			local := make([]Outcome[T], 0, len(batch.Entries))
			for _, entry := range batch.Entries {
				if err := gctx.Err(); err != nil {
					return err
				}
				result, err := entry.Job.Run(gctx)
				local = append(local, Outcome[T]{Index: entry.Index, Result: result, Err: err})
			}
			mu.Lock()
			outcomes = append(outcomes, local...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
