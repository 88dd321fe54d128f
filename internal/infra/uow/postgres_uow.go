package uow

import (
	"context"
	"errors"
	"log/slog"

	"raffle-draw/internal/infra/repository"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
	"raffle-draw/internal/pkg/backoff"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrClassConnection          = "08"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool    *pgxpool.Pool
	q       *sqlc.Queries
	retrier *backoff.Retrier
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, policy backoff.Policy, clk clock.Clock) shared.UnitOfWork {
	return &PostgresUoW{
		pool:    pool,
		q:       q,
		retrier: backoff.NewRetrier("postgres-tx", policy, clk, isRetryableError),
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.retrier.Do(ctx, func(ctx context.Context, attempt int) error {
		return u.runOnce(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, attempt, fn)
	})
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.retrier.Do(ctx, func(ctx context.Context, _ int) error {
		return fn(ctx, u.pool)
	})
}

// Rollback happens inside each attempt so retries never pile up open transactions.
func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, attempt int, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "attempt", attempt, "error", rollbackErr.Error())
		}
	}
	return err
}

func isRetryableError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errs.Is(err, errTransactionBegin) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgErrCodeSerializationFailure, pgErr.Code == pgErrCodeDeadlockDetected:
			return true
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgErrClassConnection:
			return true
		default:
			return false
		}
	}
	return pgconn.SafeToRetry(err)
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	ledgerRepo       shared.LedgerRepository
	verificationRepo shared.VerificationRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Ledger() shared.LedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewLedgerRepository(t.uow.q)
	}
	return t.ledgerRepo
}

func (t *pgTx) Verifications() shared.VerificationRepository {
	if t.verificationRepo == nil {
		t.verificationRepo = repository.NewVerificationRepository(t.uow.q)
	}
	return t.verificationRepo
}
