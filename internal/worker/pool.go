package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run calls fn(i) for every i in [0, n), fanning out across at most
// limit goroutines (GOMAXPROCS(0) if limit <= 0). Each worker writes only
// into the row(s) of shared output structures that its own index owns —
// the caller is responsible for that partitioning, matching spec.md §5's
// "each worker writes only into its own row of the output matrices".
//
// Run returns the first error any fn(i) returns, after every in-flight
// call has completed (errgroup.Group's standard behaviour): partial
// results from a failed run are never silently ignored by the caller.
func Run(ctx context.Context, n, limit int, fn func(i int) error) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	if limit > n {
		limit = n
	}
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(i)
		})
	}

	return g.Wait()
}
