// Package retry provides a configurable retry mechanism for operations that
// may fail temporarily. It wraps the retry-go package from Avast behind a
// small interface with functional options, using exponential backoff between
// attempts.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic re-attempts on failure.
type Retry interface {
	// Execute runs the given function with the configured retry logic. The
	// operation should be idempotent. Execute returns nil once the operation
	// succeeds within the configured number of attempts, the last error if
	// all attempts fail, or the context error if ctx is done first.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint          // maximum number of attempts, including the first
	delay    time.Duration // base delay between attempts
	maxDelay time.Duration // cap on the backoff delay
}

// Option is a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using retry-go.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry.
var _ Retry = (*retrier)(nil)

// New returns a Retry built from the provided options. Defaults:
//
//   - attempts: 3 (1 initial attempt + 2 retries)
//   - delay:    1 second base, growing with exponential backoff
//   - maxDelay: 5 seconds
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute runs the operation with exponential backoff between attempts,
// honoring ctx for cancellation. Only the final attempt's error is returned.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the initial one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay used before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay between retries.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}
