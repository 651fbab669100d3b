package utils

import (
	"context"
	"time"
)

// Backoff retries a call with exponentially growing pauses
type Backoff struct {
	base       time.Duration
	maxRetries int
}

// NewBackoff creates a Backoff that retries up to maxRetries times after the first call
func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, maxRetries: maxRetries}
}

// Do calls fn until it succeeds, the retries run out or ctx ends.
// fn receives the zero-based attempt number.
func (b Backoff) Do(ctx context.Context, fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		if err = fn(i); err == nil {
			return nil
		}
		if i == b.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(1<<i) * b.base)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
