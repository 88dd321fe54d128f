package readstore

import (
	"context"
	"encoding/json"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/infra"
	"raffle-draw/internal/infra/repository/converter"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
	"raffle-draw/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/readstore/verification.go -package=readstoremock

type VerificationViewQueries interface {
	GetVerificationRecord(ctx context.Context, db sqlc.DBTX, drawID uuid.UUID) (sqlc.VerificationRecords, error)
	ListVerificationNumbersBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVerificationNumbersBetweenParams) ([][]byte, error)
}

type VerificationReadStore struct {
	queries VerificationViewQueries
	db      sqlc.DBTX
}

func NewVerificationReadStore(queries VerificationViewQueries, db sqlc.DBTX) *VerificationReadStore {
	return &VerificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VerificationReadStore) FindByDrawID(ctx context.Context, drawID uuid.UUID) (*raffle.VerificationRecord, error) {
	row, err := r.queries.GetVerificationRecord(ctx, r.db, drawID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get verification record", err)
	}

	rec, err := converter.RecordFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode verification record", err, infra.KindInvalidData)
	}
	return rec, nil
}

// NumbersOn returns the drawn numbers of every record created on day (UTC).
func (r *VerificationReadStore) NumbersOn(ctx context.Context, day time.Time) ([][]int, error) {
	from, to := pgconv.DayRange(day)
	rows, err := r.queries.ListVerificationNumbersBetween(ctx, r.db, sqlc.ListVerificationNumbersBetweenParams{
		CreatedAt:   from,
		CreatedAt_2: to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list drawn numbers", err)
	}

	out := make([][]int, 0, len(rows))
	for _, raw := range rows {
		var numbers []int
		if err := json.Unmarshal(raw, &numbers); err != nil {
			return nil, infra.WrapRepoErr("failed to decode drawn numbers", err, infra.KindInvalidData)
		}
		out = append(out, numbers)
	}
	return out, nil
}
