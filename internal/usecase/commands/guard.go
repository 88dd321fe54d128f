package commands

import (
	"context"
	"log/slog"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/infra"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/shared"
)

//go:generate mockgen -source=guard.go -destination=../../../tests/mock/commands/guard.go -package=commandsmock

var ErrLedgerEntryNotFound = errs.New("ledger entry not found")

// DuplicateGuard keeps at most one successful draw per raffle. The ledger row is
// written before any external call, so concurrent or repeated requests for the
// same raffle see it and are turned away.
type DuplicateGuard interface {
	TryBeginDraw(ctx context.Context, raffleKey, requester string, override bool) (raffle.BeginOutcome, error)
	CommitDraw(ctx context.Context, raffleKey, requester string) error
	AbortDraw(ctx context.Context, raffleKey string) error
	ReleaseStale(ctx context.Context) (int64, error)
	Entry(ctx context.Context, raffleKey string) (*raffle.LedgerEntry, error)
}

type duplicateGuardImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDuplicateGuard(uow shared.UnitOfWork, clk clock.Clock) DuplicateGuard {
	return &duplicateGuardImpl{uow: uow, clock: clk}
}

// TryBeginDraw admits a raffle with no ledger row by recording it in progress.
// With override it admits regardless and leaves any existing row untouched, so
// a succeeded raffle stays succeeded and an abort cannot clear it.
func (g *duplicateGuardImpl) TryBeginDraw(ctx context.Context, raffleKey, requester string, override bool) (raffle.BeginOutcome, error) {
	outcome := raffle.AlreadyDrawn
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Ledger().InsertInProgress(ctx, tx.DB(), raffleKey, requester, g.clock.Now())
		if err != nil {
			return err
		}
		switch {
		case inserted:
			outcome = raffle.Admitted
		case override:
			slog.Warn("admin override admits an already recorded raffle",
				"raffle_key", raffleKey,
				"requester", requester)
			outcome = raffle.Admitted
		default:
			outcome = raffle.AlreadyDrawn
		}
		return nil
	})
	if err != nil {
		return raffle.AlreadyDrawn, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return outcome, nil
}

// CommitDraw is idempotent.
func (g *duplicateGuardImpl) CommitDraw(ctx context.Context, raffleKey, requester string) error {
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ledger().MarkSucceeded(ctx, tx.DB(), raffleKey, requester, g.clock.Now())
	})
	if err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return nil
}

// AbortDraw removes an in-progress marker. Succeeded rows are never removed.
func (g *duplicateGuardImpl) AbortDraw(ctx context.Context, raffleKey string) error {
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Ledger().DeleteInProgress(ctx, tx.DB(), raffleKey)
		if err != nil {
			return err
		}
		if n > 0 {
			slog.Info("released in-progress raffle", "raffle_key", raffleKey)
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return nil
}

// ReleaseStale drops every in-progress marker. Run at startup, before the
// worker accepts requests, it clears draws interrupted by a crash.
func (g *duplicateGuardImpl) ReleaseStale(ctx context.Context) (int64, error) {
	var released int64
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Ledger().DeleteAllInProgress(ctx, tx.DB())
		released = n
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	if released > 0 {
		slog.Warn("released stale in-progress raffles", "count", released)
	}
	return released, nil
}

func (g *duplicateGuardImpl) Entry(ctx context.Context, raffleKey string) (*raffle.LedgerEntry, error) {
	var entry *raffle.LedgerEntry
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Ledger().Get(ctx, tx.DB(), raffleKey)
		entry = e
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return entry, nil
}
