// Package parallel runs index-addressed tasks on a bounded pool of goroutines.
package parallel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the pool size used when a caller asks for zero workers.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Map calls fn(i) for every i in [0, n) on at most workers goroutines and
// returns the results indexed by i. Each task writes only its own slot, so fn
// needs no locking as long as it treats shared inputs as read-only.
//
// Map returns once every started task has finished. The first error, or a
// panic converted to an error, stops further tasks from being started and is
// returned with a nil result.
func Map[R any](ctx context.Context, workers, n int, fn func(i int) (R, error)) ([]R, error) {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	out := make([]R, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("parallel: task %d panicked: %v", i, r)
				}
			}()
			v, err := fn(i)
			if err != nil {
				return fmt.Errorf("parallel: task %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
