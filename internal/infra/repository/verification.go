package repository

import (
	"context"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/infra"
	"raffle-draw/internal/infra/repository/converter"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/repository/verification.go -package=repositorymock

type VerificationWriteQueries interface {
	InsertVerificationRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertVerificationRecordParams) (int64, error)
	DeleteAllVerificationRecords(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type VerificationRepository struct {
	queries VerificationWriteQueries
}

func NewVerificationRepository(queries VerificationWriteQueries) *VerificationRepository {
	return &VerificationRepository{queries: queries}
}

func (r *VerificationRepository) Insert(ctx context.Context, tx sqlc.DBTX, rec *raffle.VerificationRecord) (bool, error) {
	params, err := converter.RecordToInsertParams(rec)
	if err != nil {
		return false, infra.WrapRepoErr("failed to encode verification record", err, infra.KindInvalidData)
	}
	n, err := r.queries.InsertVerificationRecord(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert verification record", err)
	}
	return n == 1, nil
}

func (r *VerificationRepository) DeleteAll(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	n, err := r.queries.DeleteAllVerificationRecords(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge verification records", err)
	}
	return n, nil
}
