package referee

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
)

type callResult[T any] struct {
	value T
	err   error
}

// call - runs fn with a deadline. A strategy that ignores its context is abandoned once the
// deadline passes, and a panicking strategy is reported as an invalid action.
func call[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan callResult[T], 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callResult[T]{err: fmt.Errorf("%w: strategy panicked: %v", apperror.ErrInvalidAction, r)}
			}
		}()

		value, err := fn(ctx)
		done <- callResult[T]{value: value, err: err}
	}()

	select {
	case result := <-done:
		return result.value, result.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", apperror.ErrTimeout, ctx.Err())
	}
}
