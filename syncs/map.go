package syncs

import (
	"context"
	"sync"
)

// Map applies fn to each input with at most n calls running at once.
// Results are in input order.
// When ctx is done no more calls are started, started calls are waited for and ctx.Err() is returned.
func Map[T any, R any](ctx context.Context, n int, inputs []T, fn func(T) R) ([]R, error) {
	ret := make([]R, len(inputs))
	sem := NewSemaphore(n)
	wg := new(sync.WaitGroup)
	defer wg.Wait()
	for i, input := range inputs {
		if err := sem.Acquire(ctx); err != nil {
			return nil, err
		}
		wg.Go(func() {
			defer sem.Release()
			ret[i] = fn(input)
		})
	}
	wg.Wait()
	return ret, nil
}
