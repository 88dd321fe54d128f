package commands

import (
	"context"
	"log/slog"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/shared"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/verification.go -package=commandsmock

type VerificationCommands interface {
	// Commit is idempotent: a second commit of the same draw id is a no-op.
	Commit(ctx context.Context, rec *raffle.VerificationRecord) error
	PurgeAll(ctx context.Context) (int64, error)
}

type verificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewVerificationCommands(uow shared.UnitOfWork) VerificationCommands {
	return &verificationCommandsImpl{uow: uow}
}

func (c *verificationCommandsImpl) Commit(ctx context.Context, rec *raffle.VerificationRecord) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Verifications().Insert(ctx, tx.DB(), rec)
		if err != nil {
			return err
		}
		if !inserted {
			slog.Info("verification record already committed", "draw_id", rec.DrawID.String())
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return nil
}

func (c *verificationCommandsImpl) PurgeAll(ctx context.Context) (int64, error) {
	var purged int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Verifications().DeleteAll(ctx, tx.DB())
		purged = n
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	slog.Warn("purged verification records", "count", purged)
	return purged, nil
}
