package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/wardrobe/internal/service"
)

var (
	// ErrRateLimit marks a 429 from the backend. The next attempt waits the longest delay.
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrMaxRetries wraps the last failure once every attempt has been used.
	ErrMaxRetries = errors.New("max retries exceeded")
)

// RetryableError tells WithRetry whether a failed attempt may be repeated.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// WithRetry calls operation until it succeeds, fails with an error marked
// non-retryable, or runs out of attempts. Cancellation ends it at once.
func WithRetry(ctx context.Context, operation func() error, opts service.RetryOptions) error {
	b := newBackoff(opts)

	for attempt := 1; ; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		if stop, final := isFinal(err); stop {
			return final
		}
		if attempt >= b.attempts {
			return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetries, b.attempts, err)
		}

		wait := b.next(errors.Is(err, ErrRateLimit))
		slog.Warn("Backend call failed, retrying",
			"attempt", attempt,
			"max_attempts", b.attempts,
			"wait", wait,
			"error", err)

		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// isFinal reports whether err ends the retry loop, and what to return if so.
func isFinal(err error) (bool, error) {
	var retryable *RetryableError
	if errors.As(err, &retryable) && !retryable.Retryable {
		return true, retryable.Err
	}
	if errors.Is(err, context.Canceled) {
		return true, err
	}
	return false, nil
}

// backoff is the exponential wait between attempts, capped at max.
type backoff struct {
	attempts int
	delay    time.Duration
	max      time.Duration
	factor   float64
}

func newBackoff(opts service.RetryOptions) *backoff {
	b := &backoff{
		attempts: opts.MaxAttempts,
		delay:    opts.InitialDelay,
		max:      opts.MaxDelay,
		factor:   opts.Multiplier,
	}
	if b.attempts <= 0 {
		b.attempts = 3
	}
	if b.delay <= 0 {
		b.delay = 100 * time.Millisecond
	}
	if b.max <= 0 {
		b.max = 30 * time.Second
	}
	if b.factor <= 0 {
		b.factor = 2
	}
	return b
}

// next returns the wait before the coming attempt and grows the delay for the one after.
func (b *backoff) next(rateLimited bool) time.Duration {
	if rateLimited {
		b.delay = b.max
	}
	wait := min(b.delay, b.max)
	b.delay = min(time.Duration(float64(b.delay)*b.factor), b.max)
	return wait
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
