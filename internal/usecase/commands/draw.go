package commands

import (
	"context"
	"log/slog"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/pkg/metrics"

	"github.com/google/uuid"
)

//go:generate mockgen -source=draw.go -destination=../../../tests/mock/commands/draw.go -package=commandsmock

const abortTimeout = 30 * time.Second

type DrawCommands interface {
	Execute(ctx context.Context, req *raffle.RaffleRequest) (*raffle.VerificationRecord, error)
}

type drawCoordinatorImpl struct {
	guard         DuplicateGuard
	resolver      ParticipantResolver
	randomness    RandomnessSource
	verifications VerificationCommands
	clock         clock.Clock
	metrics       *metrics.Metrics
}

func NewDrawCoordinator(
	guard DuplicateGuard,
	resolver ParticipantResolver,
	randomness RandomnessSource,
	verifications VerificationCommands,
	clk clock.Clock,
	m *metrics.Metrics,
) DrawCommands {
	return &drawCoordinatorImpl{
		guard:         guard,
		resolver:      resolver,
		randomness:    randomness,
		verifications: verifications,
		clock:         clk,
		metrics:       m,
	}
}

// Execute runs one draw: admit, resolve participants, check the winner count,
// obtain randomness, commit the record, then mark the raffle drawn. A failure
// before the record is committed releases the in-progress marker.
func (c *drawCoordinatorImpl) Execute(ctx context.Context, req *raffle.RaffleRequest) (*raffle.VerificationRecord, error) {
	key := req.RaffleKey()
	requester := req.Requester().ID
	log := slog.With("raffle_key", key, "requester", requester)

	outcome, err := c.guard.TryBeginDraw(ctx, key, requester, req.Override())
	if err != nil {
		return nil, c.fail("begin", err)
	}
	if outcome == raffle.AlreadyDrawn {
		c.metrics.DrawsTotal.WithLabelValues("duplicate").Inc()
		log.Info("raffle already drawn")
		return nil, errs.Wrap(errs.ErrDuplicateDraw, key)
	}

	resolution, err := c.resolver.Resolve(ctx, key, req.TotalSlots())
	if err != nil {
		c.abort(ctx, key)
		return nil, c.fail("resolve", err)
	}

	if err := raffle.ValidateWinnerRatio(req.WinnerCount(), req.TotalSlots()); err != nil {
		c.abort(ctx, key)
		return nil, c.fail("validate", err)
	}

	proof, err := c.randomness.ObtainRandomness(ctx, 1, req.TotalSlots(), req.WinnerCount())
	if err != nil {
		c.abort(ctx, key)
		return nil, c.fail("randomness", err)
	}
	if err := proof.Validate(1, req.TotalSlots(), req.WinnerCount()); err != nil {
		c.abort(ctx, key)
		return nil, c.fail("randomness", err)
	}

	rec := raffle.NewVerificationRecord(uuid.New(), req, *proof, resolution, c.clock.Now())

	if err := c.verifications.Commit(ctx, rec); err != nil {
		c.abort(ctx, key)
		return nil, c.fail("commit", err)
	}

	// The record exists from here on. If marking the ledger fails the marker
	// stays in progress so nobody can draw again until an operator steps in.
	if err := c.guard.CommitDraw(context.WithoutCancel(ctx), key, requester); err != nil {
		log.Error("draw recorded but ledger not marked succeeded",
			"draw_id", rec.DrawID.String(),
			"error", err.Error())
		return nil, c.fail("ledger", err)
	}

	c.metrics.DrawsTotal.WithLabelValues("succeeded").Inc()
	log.Info("raffle drawn",
		"draw_id", rec.DrawID.String(),
		"numbers", proof.Numbers,
		"serial_number", proof.SerialNumber,
		"roster_size", resolution.Roster.Len())
	return rec, nil
}

// abort releases the marker even when ctx is already canceled.
func (c *drawCoordinatorImpl) abort(ctx context.Context, key string) {
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), abortTimeout)
	defer cancel()
	if err := c.guard.AbortDraw(actx, key); err != nil {
		slog.Error("failed to release in-progress raffle", "raffle_key", key, "error", err.Error())
	}
}

func (c *drawCoordinatorImpl) fail(step string, err error) error {
	c.metrics.DrawsTotal.WithLabelValues("failed_" + step).Inc()
	return err
}
