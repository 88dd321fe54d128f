// Package keyrotation obtains signed random integers from the provider, spreading
// calls across API keys and retrying transient failures until they succeed.
package keyrotation

import (
	"context"
	"log/slog"

	"raffle-draw/internal/domain/apikey"
	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/backoff"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/pkg/metrics"
)

//go:generate mockgen -source=client.go -destination=../../../tests/mock/keyrotation/client.go -package=keyrotationmock

// Provider errors must carry one of the errs markers:
// ErrQuotaExhausted (this key is spent), ErrTransientFailure or ErrProviderError.
type Provider interface {
	GenerateSignedIntegers(ctx context.Context, apiKey string, n, low, high int) (*raffle.RandomnessProof, error)
}

type StatusReporter interface {
	Status() []apikey.Usage
}

type Client struct {
	provider Provider
	ring     *apikey.Ring
	retrier  *backoff.Retrier
	metrics  *metrics.Metrics
}

func NewClient(provider Provider, ring *apikey.Ring, policy backoff.Policy, clk clock.Clock, m *metrics.Metrics) *Client {
	c := &Client{
		provider: provider,
		ring:     ring,
		metrics:  m,
	}
	c.retrier = backoff.NewRetrier("randomness", policy, clk, isTransient)
	return c
}

func isTransient(err error) bool {
	return errs.Is(err, errs.ErrTransientFailure)
}

// ObtainRandomness returns count distinct integers in [low, high]. Transient
// failures are retried per the client's policy for as long as ctx allows;
// ErrQuotaExhausted and ErrProviderError are returned at once.
func (c *Client) ObtainRandomness(ctx context.Context, low, high, count int) (*raffle.RandomnessProof, error) {
	var proof *raffle.RandomnessProof
	err := c.retrier.Do(ctx, func(ctx context.Context, attempt int) error {
		p, err := c.attempt(ctx, low, high, count)
		if err != nil {
			return err
		}
		proof = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proof, nil
}

// attempt walks the ring until one key answers. A key the provider reports as
// spent is exhausted locally and the next key is tried without waiting.
func (c *Client) attempt(ctx context.Context, low, high, count int) (*raffle.RandomnessProof, error) {
	for {
		lease, err := c.ring.Next()
		if err != nil {
			slog.Error("no api key has quota left", "keys", c.ring.Len(), "next_reset", c.ring.NextReset())
			return nil, err
		}

		proof, err := c.provider.GenerateSignedIntegers(ctx, lease.Secret(), count, low, high)
		if err == nil {
			used := c.ring.RecordSuccess(lease)
			c.metrics.RandomnessCalls.WithLabelValues(lease.ID(), "ok").Inc()
			c.metrics.KeyRequestsUsed.WithLabelValues(lease.ID()).Set(float64(used))
			proof.KeyID = lease.ID()
			return proof, nil
		}

		switch {
		case errs.Is(err, errs.ErrQuotaExhausted):
			c.metrics.RandomnessCalls.WithLabelValues(lease.ID(), "quota").Inc()
			slog.Warn("provider rejected key as spent, rotating", "key", lease.ID(), "error", err.Error())
			c.ring.Exhaust(lease)
			continue
		case errs.Is(err, errs.ErrTransientFailure):
			c.metrics.RandomnessCalls.WithLabelValues(lease.ID(), "transient").Inc()
		default:
			c.metrics.RandomnessCalls.WithLabelValues(lease.ID(), "error").Inc()
		}
		return nil, err
	}
}

// Status reports per-key usage, refreshing the quota gauges on the way.
func (c *Client) Status() []apikey.Usage {
	usage := c.ring.Usage()
	for _, u := range usage {
		c.metrics.KeyRequestsUsed.WithLabelValues(u.ID).Set(float64(u.Used))
		c.metrics.KeyQuota.WithLabelValues(u.ID).Set(float64(u.Quota))
	}
	return usage
}
