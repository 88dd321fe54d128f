package shared

import (
	"context"
	"time"

	"raffle-draw/internal/domain/raffle"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Ledger() LedgerRepository
	Verifications() VerificationRepository
	DB() sqlc.DBTX
}

type LedgerRepository interface {
	// InsertInProgress reports false when the raffle already has a row.
	InsertInProgress(ctx context.Context, tx sqlc.DBTX, raffleKey, requester string, now time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, raffleKey string) (*raffle.LedgerEntry, error)
	MarkSucceeded(ctx context.Context, tx sqlc.DBTX, raffleKey, requester string, now time.Time) error
	DeleteInProgress(ctx context.Context, tx sqlc.DBTX, raffleKey string) (int64, error)
	DeleteAllInProgress(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type VerificationRepository interface {
	// Insert reports false when a record with the same draw id already exists.
	Insert(ctx context.Context, tx sqlc.DBTX, rec *raffle.VerificationRecord) (bool, error)
	DeleteAll(ctx context.Context, tx sqlc.DBTX) (int64, error)
}
