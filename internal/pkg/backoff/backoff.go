// Package backoff turns a declarative retry policy into a go-retry Backoff and
// runs retry loops against an injected clock, so long waits cost nothing in tests.
package backoff

import (
	"context"
	"log/slog"
	"time"

	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"

	"github.com/sethvargo/go-retry"
)

var ErrInvalidPolicy = errs.New("invalid backoff policy")

type Policy struct {
	Interval      time.Duration
	Exponential   bool
	MaxInterval   time.Duration // 0 = uncapped
	JitterPercent uint64
	MaxAttempts   uint64 // 0 = unbounded
}

// Constant is the fixed-interval, never-give-up policy used for the randomness provider.
func Constant(interval time.Duration, jitterPercent uint64) Policy {
	return Policy{Interval: interval, JitterPercent: jitterPercent}
}

// ShortExponential is the persistence-boundary policy: a handful of quick, doubling attempts.
func ShortExponential(base time.Duration, maxAttempts uint64) Policy {
	return Policy{Interval: base, Exponential: true, JitterPercent: 20, MaxAttempts: maxAttempts}
}

func (p Policy) Unbounded() bool {
	return p.MaxAttempts == 0
}

func (p Policy) Backoff() (retry.Backoff, error) {
	if p.Interval <= 0 {
		return nil, errs.Wrap(ErrInvalidPolicy, "interval must be positive")
	}

	var b retry.Backoff
	if p.Exponential {
		b = retry.NewExponential(p.Interval)
	} else {
		b = retry.NewConstant(p.Interval)
	}
	if p.MaxInterval > 0 {
		b = retry.WithCappedDuration(p.MaxInterval, b)
	}
	if p.JitterPercent > 0 {
		b = retry.WithJitterPercent(p.JitterPercent, b)
	}
	if p.MaxAttempts > 0 {
		// WithMaxRetries counts retries, not attempts
		b = retry.WithMaxRetries(p.MaxAttempts-1, b)
	}
	return b, nil
}

type Retrier struct {
	policy      Policy
	clock       clock.Clock
	shouldRetry func(error) bool
	name        string
}

func NewRetrier(name string, policy Policy, clk clock.Clock, shouldRetry func(error) bool) *Retrier {
	return &Retrier{
		policy:      policy,
		clock:       clk,
		shouldRetry: shouldRetry,
		name:        name,
	}
}

// Do calls fn until it succeeds, returns an error shouldRetry rejects, the policy
// runs out of attempts, or ctx is done. The last error from fn is returned.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	b, err := r.policy.Backoff()
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err := fn(ctx, attempt)
		if err == nil {
			return nil
		}
		if !r.shouldRetry(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait, stop := b.Next()
		if stop {
			slog.Error("giving up after retries",
				"retrier", r.name,
				"attempts", attempt,
				"error", err.Error())
			return err
		}

		slog.Warn("retrying after retryable error",
			"retrier", r.name,
			"attempt", attempt,
			"wait", wait,
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(wait):
		}
	}
}
