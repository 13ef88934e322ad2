package calendar

import (
	"context"
	"errors"
	"time"
)

// retryBackoff is the constant wait between attempts. The policy is a small
// fixed count with constant backoff, not exponential with jitter.
const retryBackoff = 250 * time.Millisecond

// withRetry runs fn up to attempts times, stopping early on success, on a
// non-retryable error, or when ctx is done.
func withRetry(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return ErrUnavailable
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, ErrUnavailable) {
			return lastErr
		}
		if i < attempts-1 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return ErrUnavailable
			}
		}
	}
	return lastErr
}
