// ABOUTME: Retry utilities for API calls with exponential backoff
// ABOUTME: Shared by the OpenAI client for embeddings and completions
package util

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Do calls fn until it succeeds or maxRetries additional attempts are
// exhausted, sleeping with exponential backoff between attempts. Returns
// early if ctx is cancelled while waiting.
func Do[T any](ctx context.Context, maxRetries int, baseDelay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(Backoff(baseDelay, attempt)):
			case <-ctx.Done():
				return zero, fmt.Errorf("retry cancelled: %w", ctx.Err())
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
	}

	return zero, fmt.Errorf("failed after %d attempts: %w", maxRetries+1, lastErr)
}

// Backoff returns exponential backoff with jitter.
// Base delay is doubled each attempt, with random jitter up to 25%.
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 || baseDelay <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	// Cap at 30 seconds
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	// Jitter: -25% to +25%
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
