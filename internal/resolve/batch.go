package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result for one batch item. Err is nil when Resolution holds
// a result, ErrNilInput for nil items, and a *StageError otherwise.
type Outcome struct {
	Resolution Resolution
	Err        error
}

// Resolved reports whether the item produced a timestamp.
func (o Outcome) Resolved() bool { return o.Err == nil }

// Batch resolves raws across at most workers goroutines. Outcomes are in
// input order. Cancelling ctx stops scheduling new items and returns ctx.Err().
func Batch(ctx context.Context, r *Resolver, raws []*string, workers int, debug bool) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]Outcome, len(raws))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, raw := range raws {
		i, raw := i, raw // per-iteration copies (go 1.21 loop semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if raw == nil {
				out[i] = Outcome{Err: ErrNilInput}
				return nil
			}
			res, err := r.Resolve(*raw, debug)
			out[i] = Outcome{Resolution: res, Err: err}
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
