package pagverde

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultBulkConcurrency is the default number of concurrent workers used by
// RunBulk when concurrency is not positive.
const DefaultBulkConcurrency = 5

// BulkResult is the outcome of one operation in a RunBulk call.
type BulkResult[T any] struct {
	ID      string
	Success bool
	Err     error
	Data    T
}

// RunBulk executes op once per ID with bounded parallelism. Individual
// failures do not stop the batch; each outcome lands in the returned slice,
// which is ordered like ids. Cancelling ctx stops scheduling and marks
// unprocessed entries with the context error.
func RunBulk[T any](
	ctx context.Context,
	ids []string,
	concurrency int64,
	op func(ctx context.Context, id string) (T, error),
) []BulkResult[T] {
	if concurrency <= 0 {
		concurrency = DefaultBulkConcurrency
	}

	sem := semaphore.NewWeighted(concurrency)
	results := make([]BulkResult[T], len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id // per-iteration copies; go directive predates Go 1.22 loop semantics
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = BulkResult[T]{ID: id, Err: err}
				return nil
			}
			defer sem.Release(1)

			if err := ctx.Err(); err != nil {
				results[i] = BulkResult[T]{ID: id, Err: err}
				return nil
			}

			data, err := op(ctx, id)
			if err != nil {
				results[i] = BulkResult[T]{ID: id, Err: err}
				return nil
			}
			results[i] = BulkResult[T]{ID: id, Success: true, Data: data}
			return nil // individual errors never fail the group
		})
	}
	_ = g.Wait()

	return results
}

// CountBulkResults tallies successes and failures from a RunBulk call.
func CountBulkResults[T any](results []BulkResult[T]) (succeeded, failed int) {
	for _, r := range results {
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
