package app

import (
	"context"
	"time"
)

// Bounded runs op and waits at most timeout for its result.
//
// When timeout expires first, TimeoutError is returned immediately and op's context is canceled.
// Op is not waited for, its result is discarded.
// Non-positive timeout means op is not bounded.
func Bounded[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return op(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		val T
		err error
	}
	// Buffered, so abandoned op can always finish.
	done := make(chan result, 1)
	go func() {
		val, err := op(ctx)
		done <- result{val: val, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var zero T
	select {
	case r := <-done:
		return r.val, r.err
	case <-timer.C:
		return zero, &TimeoutError{Timeout: timeout}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
