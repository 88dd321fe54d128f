//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"raffle-draw/internal/infra"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/queries"
	"raffle-draw/tests/common/builder"
	queriesmock "raffle-draw/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerificationQueries_GetByDrawID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(*queriesmock.MockVerificationReadStore, uuid.UUID)
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(m *queriesmock.MockVerificationReadStore, id uuid.UUID) {
				rec, _ := builder.NewRaffleBuilder().BuildRecord(3, 6)
				rec.DrawID = id
				m.EXPECT().FindByDrawID(ctx, id).Return(rec, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(m *queriesmock.MockVerificationReadStore, id uuid.UUID) {
				m.EXPECT().FindByDrawID(ctx, id).Return(nil, infra.WrapRepoErr("verification record not found", nil, infra.KindNotFound))
			},
			wantErr: errs.ErrVerificationNotFound,
		},
		{
			name: "store failure",
			setupMock: func(m *queriesmock.MockVerificationReadStore, id uuid.UUID) {
				m.EXPECT().FindByDrawID(ctx, id).Return(nil, infra.WrapRepoErr("failed", errors.New("connection reset")))
			},
			wantErr: errs.ErrPersistenceFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockVerificationReadStore(ctrl)
			id := uuid.New()
			tc.setupMock(store, id)

			rec, err := queries.NewVerificationQueries(store).GetByDrawID(ctx, id)

			if tc.wantErr != nil {
				assert.Nil(t, rec)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, rec.DrawID)
		})
	}
}

func TestVerificationQueries_RollHistory(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("tallies the day's draws", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVerificationReadStore(ctrl)
		store.EXPECT().NumbersOn(ctx, day).Return([][]int{{3, 6}, {6, 9}}, nil)

		h, err := queries.NewVerificationQueries(store).RollHistory(ctx, day)
		require.NoError(t, err)

		assert.Equal(t, 2, h.Draws)
		assert.Equal(t, 4, h.Numbers)
		require.NotEmpty(t, h.Counts)
		assert.Equal(t, 6, h.Counts[0].Number)
		assert.Equal(t, 2, h.Counts[0].Count)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVerificationReadStore(ctrl)
		store.EXPECT().NumbersOn(ctx, day).Return(nil, errors.New("connection reset"))

		_, err := queries.NewVerificationQueries(store).RollHistory(ctx, day)
		assert.True(t, errs.Is(err, errs.ErrPersistenceFailure))
	})
}
