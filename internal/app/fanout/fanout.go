// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. It runs a function across a slice of items
// with a fixed worker limit, preserving input order in results.
//
// Each item succeeds or fails on its own: a failing item never cancels its
// siblings. The reset job relies on this to isolate per-group failures.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// Once ctx is done, items that have not started record ctx.Err() and fn is
// not called for them. Items already running complete normally (fn is
// responsible for checking ctx internally if it supports cancellation).
//
// Run blocks until all started items complete. If items is empty, it returns
// an empty non-nil slice immediately. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
