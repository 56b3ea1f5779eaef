package decorate

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle wraps fn so that invocations are at least minInterval apart.
// Calls block until the interval has elapsed, or return early with the
// context error when ctx is canceled while waiting.
func Throttle(minInterval time.Duration, fn func()) func(context.Context) error {
	limiter := rate.NewLimiter(rate.Every(minInterval), 1)
	return func(ctx context.Context) error {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		fn()
		return nil
	}
}

// ThrottleValue is Throttle for functions that return a value.
func ThrottleValue[T any](minInterval time.Duration, fn func() (T, error)) func(context.Context) (T, error) {
	limiter := rate.NewLimiter(rate.Every(minInterval), 1)
	return func(ctx context.Context) (T, error) {
		var zero T
		if err := limiter.Wait(ctx); err != nil {
			return zero, err
		}
		return fn()
	}
}
