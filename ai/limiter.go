package ai

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// Limiter caps in-flight generation calls and bounds each one with a timeout
type Limiter struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewLimiter allows maxConcurrent calls at once. A zero timeout leaves calls
// bounded only by the caller's context.
func NewLimiter(maxConcurrent int64, timeout time.Duration) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Limiter{
		sem:     semaphore.NewWeighted(maxConcurrent),
		timeout: timeout,
	}
}

// Do runs fn once a slot is free. The timeout covers the wait for a slot too.
func (l *Limiter) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.sem.Release(1)

	return fn(ctx)
}
