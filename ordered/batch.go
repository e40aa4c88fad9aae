package ordered

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch mapping — the embarrassingly parallel case.
//
// Independent raw vectors share no state, so a batch is mapped with a
// bounded errgroup fan-out: one task per vector, at most `workers`
// running at once (default: one per available CPU). Results keep input
// order. The first failing vector cancels the remaining tasks and its
// error (wrapped with the offending index) is returned; sentinel
// identity survives the wrap for errors.Is.

// MapForward applies t.Forward to every vector in inputs concurrently.
func MapForward(ctx context.Context, t Transform, inputs [][]float64, opts ...Option) ([][]float64, error) {
	if t == nil {
		return nil, ErrNilTransform
	}

	return mapBatch(ctx, t.Forward, inputs, gatherOptions(opts...))
}

// MapInverse applies t.Inverse to every vector in inputs concurrently.
func MapInverse(ctx context.Context, t Transform, inputs [][]float64, opts ...Option) ([][]float64, error) {
	if t == nil {
		return nil, ErrNilTransform
	}

	return mapBatch(ctx, t.Inverse, inputs, gatherOptions(opts...))
}

// mapBatch runs fn over inputs under a bounded errgroup.
func mapBatch(ctx context.Context, fn func([]float64) ([]float64, error), inputs [][]float64, opt Options) ([][]float64, error) {
	workers := opt.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([][]float64, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			// A cancelled batch should stop scheduling work promptly;
			// each task is short, so a pre-check suffices.
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := fn(in)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opt.log.Debug().Int("vectors", len(inputs)).Int("workers", workers).Msg("batch map complete")

	return out, nil
}
