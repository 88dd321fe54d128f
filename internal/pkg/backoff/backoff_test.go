//go:build unit

package backoff_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"raffle-draw/internal/pkg/backoff"
	"raffle-draw/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("flaky")

func always(error) bool { return true }

func TestPolicy_Backoff(t *testing.T) {
	tests := []struct {
		name    string
		policy  backoff.Policy
		want    []time.Duration
		wantErr bool
	}{
		{
			name:   "constant never stops",
			policy: backoff.Constant(time.Minute, 0),
			want:   []time.Duration{time.Minute, time.Minute, time.Minute, time.Minute},
		},
		{
			name:   "exponential doubles up to the attempt limit",
			policy: backoff.Policy{Interval: 10 * time.Millisecond, Exponential: true, MaxAttempts: 3},
			want:   []time.Duration{10 * time.Millisecond, 20 * time.Millisecond},
		},
		{
			name:   "cap bounds the interval",
			policy: backoff.Policy{Interval: time.Second, Exponential: true, MaxInterval: 3 * time.Second, MaxAttempts: 5},
			want:   []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second},
		},
		{
			name:    "zero interval is rejected",
			policy:  backoff.Policy{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.policy.Backoff()
			if tt.wantErr {
				assert.ErrorIs(t, err, backoff.ErrInvalidPolicy)
				return
			}
			require.NoError(t, err)

			var got []time.Duration
			for i := 0; i < len(tt.want)+1; i++ {
				d, stop := b.Next()
				if stop {
					break
				}
				got = append(got, d)
			}
			if tt.policy.Unbounded() {
				got = got[:len(tt.want)]
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRetrier_Do(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("retries until success", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		r := backoff.NewRetrier("test", backoff.Constant(5*time.Minute, 0), clk, always)

		calls := 0
		err := r.Do(ctx, func(context.Context, int) error {
			calls++
			if calls < 3 {
				return errFlaky
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []time.Duration{5 * time.Minute, 5 * time.Minute}, clk.Waits())
		assert.Equal(t, start.Add(10*time.Minute), clk.Now())
	})

	t.Run("non retryable error returns at once", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		r := backoff.NewRetrier("test", backoff.Constant(time.Second, 0), clk, func(error) bool { return false })

		calls := 0
		err := r.Do(ctx, func(context.Context, int) error {
			calls++
			return errFlaky
		})

		assert.ErrorIs(t, err, errFlaky)
		assert.Equal(t, 1, calls)
		assert.Empty(t, clk.Waits())
	})

	t.Run("gives up after max attempts with the last error", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		r := backoff.NewRetrier("test", backoff.Policy{Interval: time.Millisecond, Exponential: true, MaxAttempts: 3}, clk, always)

		var attempts []int
		err := r.Do(ctx, func(_ context.Context, attempt int) error {
			attempts = append(attempts, attempt)
			return errFlaky
		})

		assert.ErrorIs(t, err, errFlaky)
		assert.Equal(t, []int{1, 2, 3}, attempts)
	})

	t.Run("canceled context ends the loop", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		r := backoff.NewRetrier("test", backoff.Constant(time.Hour, 0), clk, always)
		cctx, cancel := context.WithCancel(ctx)

		calls := 0
		err := r.Do(cctx, func(context.Context, int) error {
			calls++
			cancel()
			return errFlaky
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
