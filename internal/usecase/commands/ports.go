package commands

import (
	"context"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/usecase/roster"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// ParticipantResolver errors carry errs.ErrContentUnavailable.
type ParticipantResolver interface {
	Resolve(ctx context.Context, postID string, totalSlots int) (*raffle.Resolution, error)
}

// RandomnessSource errors carry errs.ErrQuotaExhausted or errs.ErrProviderError,
// or are the context's error when the caller gave up waiting.
type RandomnessSource interface {
	ObtainRandomness(ctx context.Context, low, high, count int) (*raffle.RandomnessProof, error)
}

// PostLookup errors carry errs.ErrContentUnavailable.
type PostLookup interface {
	FetchPost(ctx context.Context, postID string) (*roster.Post, error)
}
