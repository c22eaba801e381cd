package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/wardrobe/internal/service"
)

func fastRetry(attempts int) service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestWithRetry(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		failures  int
		err       error
		attempts  int
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds first time", failures: 0, attempts: 3, wantCalls: 1},
		{name: "succeeds after failures", failures: 2, err: errBoom, attempts: 3, wantCalls: 3},
		{name: "exhausts attempts", failures: 5, err: errBoom, attempts: 3, wantCalls: 3, wantErr: ErrMaxRetries},
		{
			name:      "non-retryable stops",
			failures:  5,
			err:       &RetryableError{Err: errBoom, Retryable: false},
			attempts:  3,
			wantCalls: 1,
			wantErr:   errBoom,
		},
		{name: "canceled stops", failures: 5, err: context.Canceled, attempts: 3, wantCalls: 1, wantErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			}, fastRetry(tt.attempts))

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithRetry_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := fastRetry(5)
	opts.InitialDelay = time.Second
	opts.MaxDelay = time.Second

	err := WithRetry(ctx, func() error { return errors.New("transient") }, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		name        string
		opts        service.RetryOptions
		rateLimited []bool
		want        []time.Duration
	}{
		{
			name:        "doubles up to the cap",
			opts:        service.RetryOptions{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2},
			rateLimited: []bool{false, false, false},
			want:        []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond},
		},
		{
			name:        "rate limit jumps to the cap",
			opts:        service.RetryOptions{InitialDelay: 10 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2},
			rateLimited: []bool{true, false},
			want:        []time.Duration{time.Second, time.Second},
		},
		{
			name:        "zero options use defaults",
			rateLimited: []bool{false, false},
			want:        []time.Duration{100 * time.Millisecond, 200 * time.Millisecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackoff(tt.opts)
			got := make([]time.Duration, 0, len(tt.rateLimited))
			for _, limited := range tt.rateLimited {
				got = append(got, b.next(limited))
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 3, newBackoff(service.RetryOptions{}).attempts)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimit))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: false}))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(errors.New("plain")))
}
