package remote

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig controls the retry decorator's backoff schedule.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig keeps total retry time well under the UI's
// patience: the tracker degrades to local state anyway, so there is no
// point grinding on a dead link.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 300 * time.Millisecond,
		MaxWait:     3 * time.Second,
		Multiplier:  2.0,
	}
}

// retryStore is a decorator that retries transient errors with
// exponential backoff and jitter.
type retryStore struct {
	inner  Store
	config RetryConfig
}

// WithRetry wraps a Store with retry logic.
func WithRetry(s Store, cfg RetryConfig) Store {
	return &retryStore{inner: s, config: cfg}
}

func (r *retryStore) Load(ctx context.Context, accountID string) (*Document, error) {
	var doc *Document
	err := r.do(ctx, func() error {
		var err error
		doc, err = r.inner.Load(ctx, accountID)
		return err
	})
	return doc, err
}

func (r *retryStore) Merge(ctx context.Context, accountID string, fields map[string]any) error {
	return r.do(ctx, func() error {
		return r.inner.Merge(ctx, accountID, fields)
	})
}

func (r *retryStore) do(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := range r.config.MaxAttempts {
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}
	return lastErr
}

func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// A missing document is a fact, not a fault.
	if errors.Is(err, ErrNotFound) {
		return false
	}

	var rl *ErrRateLimited
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Other errors (4xx, decode failures) won't improve on retry.
	return false
}

// backoff computes the wait duration for the given attempt.
func (r *retryStore) backoff(attempt int, err error) time.Duration {
	// Respect the server's Retry-After when rate limited.
	var rl *ErrRateLimited
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
