package repository

import (
	"context"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/infra"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
	"raffle-draw/internal/pkg/pgconv"
)

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/repository/ledger.go -package=repositorymock

type LedgerWriteQueries interface {
	InsertLedgerInProgress(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerInProgressParams) (int64, error)
	GetLedgerEntry(ctx context.Context, db sqlc.DBTX, raffleKey string) (sqlc.DrawLedger, error)
	MarkLedgerSucceeded(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkLedgerSucceededParams) error
	DeleteLedgerInProgress(ctx context.Context, db sqlc.DBTX, raffleKey string) (int64, error)
	DeleteAllLedgerInProgress(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
}

func NewLedgerRepository(queries LedgerWriteQueries) *LedgerRepository {
	return &LedgerRepository{queries: queries}
}

func (r *LedgerRepository) InsertInProgress(ctx context.Context, tx sqlc.DBTX, raffleKey, requester string, now time.Time) (bool, error) {
	n, err := r.queries.InsertLedgerInProgress(ctx, tx, sqlc.InsertLedgerInProgressParams{
		RaffleKey: raffleKey,
		Requester: requester,
		CreatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert ledger entry", err)
	}
	return n == 1, nil
}

func (r *LedgerRepository) Get(ctx context.Context, tx sqlc.DBTX, raffleKey string) (*raffle.LedgerEntry, error) {
	row, err := r.queries.GetLedgerEntry(ctx, tx, raffleKey)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ledger entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ledger entry", err)
	}
	return &raffle.LedgerEntry{
		RaffleKey: row.RaffleKey,
		Status:    raffle.LedgerStatus(row.Status),
		Requester: row.Requester,
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *LedgerRepository) MarkSucceeded(ctx context.Context, tx sqlc.DBTX, raffleKey, requester string, now time.Time) error {
	err := r.queries.MarkLedgerSucceeded(ctx, tx, sqlc.MarkLedgerSucceededParams{
		RaffleKey: raffleKey,
		Requester: requester,
		CreatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark ledger entry succeeded", err)
	}
	return nil
}

func (r *LedgerRepository) DeleteInProgress(ctx context.Context, tx sqlc.DBTX, raffleKey string) (int64, error) {
	n, err := r.queries.DeleteLedgerInProgress(ctx, tx, raffleKey)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete in-progress ledger entry", err)
	}
	return n, nil
}

func (r *LedgerRepository) DeleteAllInProgress(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	n, err := r.queries.DeleteAllLedgerInProgress(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release in-progress ledger entries", err)
	}
	return n, nil
}
