package main

import (
	"context"
	"errors"
	"time"

	"quoteSampler/internal/sampler"
)

// withRetry re-runs fn with exponential backoff, but only for failed batch
// invocations. Structural failures (bad config, decode mismatches) are not
// retryable and return immediately.
func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func(context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	delay := baseDelay
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		var remoteErr *sampler.RemoteExecutionError
		if !errors.As(err, &remoteErr) {
			return err
		}
		if attempt >= maxRetries {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}
