package queries

import (
	"context"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/infra"
	"raffle-draw/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/queries/verification.go -package=queriesmock

type VerificationReadStore interface {
	FindByDrawID(ctx context.Context, drawID uuid.UUID) (*raffle.VerificationRecord, error)
	NumbersOn(ctx context.Context, day time.Time) ([][]int, error)
}

type VerificationQueries interface {
	GetByDrawID(ctx context.Context, drawID uuid.UUID) (*raffle.VerificationRecord, error)
	RollHistory(ctx context.Context, day time.Time) (*raffle.RollHistory, error)
}

type verificationQueriesImpl struct {
	repo VerificationReadStore
}

func NewVerificationQueries(repo VerificationReadStore) VerificationQueries {
	return &verificationQueriesImpl{repo: repo}
}

func (q *verificationQueriesImpl) GetByDrawID(ctx context.Context, drawID uuid.UUID) (*raffle.VerificationRecord, error) {
	rec, err := q.repo.FindByDrawID(ctx, drawID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVerificationNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return rec, nil
}

func (q *verificationQueriesImpl) RollHistory(ctx context.Context, day time.Time) (*raffle.RollHistory, error) {
	draws, err := q.repo.NumbersOn(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return raffle.TallyRolls(day, draws), nil
}
