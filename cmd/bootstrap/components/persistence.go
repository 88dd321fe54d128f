package components

import (
	"raffle-draw/internal/infra/readstore"
	"raffle-draw/internal/infra/repository"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
	"raffle-draw/internal/infra/uow"
	"raffle-draw/internal/pkg/backoff"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/config"
	"raffle-draw/internal/usecase/queries"
	"raffle-draw/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Verification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VerificationViewQueries)),
		),
		fx.Annotate(
			readstore.NewVerificationReadStore,
			fx.As(new(queries.VerificationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.LedgerWriteQueries)),
		),
		fx.Annotate(
			repository.NewLedgerRepository,
			fx.As(new(shared.LedgerRepository)),
		),
		// Verification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.VerificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewVerificationRepository,
			fx.As(new(shared.VerificationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config, clk clock.Clock) shared.UnitOfWork {
	policy := backoff.ShortExponential(cfg.Persistence.BaseBackoff, cfg.Persistence.MaxAttempts)
	return uow.NewPostgresUoW(pool, q, policy, clk)
}
