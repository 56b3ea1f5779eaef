package decorate

import (
	"context"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = time.Second
)

type retryConfig struct {
	maxAttempts int
	delay       time.Duration
	retryIf     func(error) bool
	onRetry     func(err error, attempt int)
}

// RetryOption customizes retry behavior.
type RetryOption func(*retryConfig)

// WithMaxAttempts sets the total number of attempts, including the first.
func WithMaxAttempts(n int) RetryOption {
	return func(c *retryConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithDelay sets the pause between attempts.
func WithDelay(d time.Duration) RetryOption {
	return func(c *retryConfig) { c.delay = d }
}

// WithRetryIf restricts retries to errors the predicate accepts. Errors it
// rejects are returned immediately.
func WithRetryIf(pred func(error) bool) RetryOption {
	return func(c *retryConfig) { c.retryIf = pred }
}

// WithOnRetry registers a callback invoked before each retry with the error
// and the 1-based attempt number that failed.
func WithOnRetry(fn func(err error, attempt int)) RetryOption {
	return func(c *retryConfig) { c.onRetry = fn }
}

// Do runs fn, retrying on error up to the configured number of attempts.
// The last error is returned when all attempts fail. Waiting between
// attempts respects ctx cancellation.
//
// Example:
//
//	err := decorate.Do(ctx, pingUpstream,
//	    decorate.WithMaxAttempts(5),
//	    decorate.WithDelay(100*time.Millisecond))
func Do(ctx context.Context, fn func() error, opts ...RetryOption) error {
	_, err := DoValue(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, opts...)
	return err
}

// DoValue is Do for functions that return a value alongside the error.
func DoValue[T any](ctx context.Context, fn func() (T, error), opts ...RetryOption) (T, error) {
	cfg := retryConfig{
		maxAttempts: defaultMaxAttempts,
		delay:       defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		result  T
		lastErr error
	)
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if cfg.retryIf != nil && !cfg.retryIf(lastErr) {
			return result, lastErr
		}
		if attempt == cfg.maxAttempts {
			break
		}
		if cfg.onRetry != nil {
			cfg.onRetry(lastErr, attempt)
		}
		if err := sleep(ctx, cfg.delay); err != nil {
			return result, err
		}
	}
	return result, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
