//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"raffle-draw/internal/domain/apikey"
	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/backoff"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/pkg/metrics"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/keyrotation"
	"raffle-draw/tests/common/builder"
	"raffle-draw/tests/common/memstore"
	commandsmock "raffle-draw/tests/mock/commands"
	keyrotationmock "raffle-draw/tests/mock/keyrotation"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DrawCoordinatorTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockResolver   *commandsmock.MockParticipantResolver
	mockRandomness *commandsmock.MockRandomnessSource
	store          *memstore.Store
	metrics        *metrics.Metrics
	coordinator    commands.DrawCommands
}

func (s *DrawCoordinatorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockResolver = commandsmock.NewMockParticipantResolver(s.mockCtrl)
	s.mockRandomness = commandsmock.NewMockRandomnessSource(s.mockCtrl)
	s.store = memstore.New()
	s.metrics = metrics.NewNop()

	clk := clock.NewMockClock(guardNow)
	s.coordinator = commands.NewDrawCoordinator(
		commands.NewDuplicateGuard(s.store, clk),
		s.mockResolver,
		s.mockRandomness,
		commands.NewVerificationCommands(s.store),
		clk,
		s.metrics,
	)
}

func (s *DrawCoordinatorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDrawCoordinatorSuite(t *testing.T) {
	suite.Run(t, new(DrawCoordinatorTestSuite))
}

func (s *DrawCoordinatorTestSuite) request(mutate func(*builder.RaffleBuilder)) (*raffle.RaffleRequest, *builder.RaffleBuilder) {
	b := builder.NewRaffleBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	req, err := b.BuildDomain()
	s.Require().NoError(err)
	return req, b
}

func (s *DrawCoordinatorTestSuite) assertReleased(key string) {
	_, ok := s.store.LedgerEntry(key)
	s.False(ok, "in-progress marker should be released")
	s.Empty(s.store.Records())
}

func (s *DrawCoordinatorTestSuite) TestExecute_Success() {
	ctx := context.Background()
	req, b := s.request(nil)
	proof := builder.NewProof(1, 10, 3, 6)

	s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
	s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 10, 2).Return(&proof, nil).Times(1)

	rec, err := s.coordinator.Execute(ctx, req)
	s.Require().NoError(err)

	s.Equal("abc123", rec.RaffleKey)
	s.Equal([]int{3, 6}, rec.Numbers())
	s.Require().Len(rec.Winners, 2)
	s.Equal("carol", rec.Winners[0].Handle)
	s.InDelta(0.2, rec.Winners[0].Share, 0.0001)
	s.Equal(raffle.UnassignedHandle, rec.Winners[1].Handle)
	s.Equal(guardNow, rec.CreatedAt)

	entry, ok := s.store.LedgerEntry("abc123")
	s.Require().True(ok)
	s.Equal(raffle.LedgerSucceeded, entry.Status)
	s.Len(s.store.Records(), 1)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.DrawsTotal.WithLabelValues("succeeded")))
}

func (s *DrawCoordinatorTestSuite) TestExecute_SingleSlotSingleWinner() {
	ctx := context.Background()
	req, b := s.request(func(b *builder.RaffleBuilder) {
		b.TotalSlots = 1
		b.WinnerCount = 1
		b.Assignments = []raffle.SlotAssignment{{Slot: 1, Handle: "alice", Paid: true}}
	})
	proof := builder.NewProof(1, 1, 1)

	s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 1).Return(b.BuildResolution(), nil).Times(1)
	s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 1, 1).Return(&proof, nil).Times(1)

	rec, err := s.coordinator.Execute(ctx, req)
	s.Require().NoError(err)

	s.Equal([]int{1}, rec.Numbers())
	s.Require().Len(rec.Winners, 1)
	s.Equal(1, rec.Winners[0].Slot)
	s.Equal("alice", rec.Winners[0].Handle)
	s.True(rec.Winners[0].Paid)
	s.InDelta(1.0, rec.Winners[0].Share, 0.0001)

	entry, ok := s.store.LedgerEntry("abc123")
	s.Require().True(ok)
	s.Equal(raffle.LedgerSucceeded, entry.Status)
	s.Len(s.store.Records(), 1)
}

// The coordinator runs over the real key rotation client here; only the
// randomness provider behind it is mocked.
func (s *DrawCoordinatorTestSuite) TestExecute_CommitsAfterTransientProviderFailures() {
	ctx := context.Background()
	clk := clock.NewMockClock(guardNow)
	ring, err := apikey.NewRing(apikey.StatesFromSecrets([]string{"secret-aaaa"}, 100), 9, clk)
	s.Require().NoError(err)
	provider := keyrotationmock.NewMockProvider(s.mockCtrl)
	randomness := keyrotation.NewClient(provider, ring, backoff.Constant(5*time.Minute, 0), clk, s.metrics)
	coordinator := commands.NewDrawCoordinator(
		commands.NewDuplicateGuard(s.store, clk),
		s.mockResolver,
		randomness,
		commands.NewVerificationCommands(s.store),
		clk,
		s.metrics,
	)

	req, b := s.request(nil)
	proof := builder.NewProof(1, 10, 3, 6)
	transient := errs.Mark(errors.New("503 service unavailable"), errs.ErrTransientFailure)

	s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
	gomock.InOrder(
		provider.EXPECT().GenerateSignedIntegers(gomock.Any(), "secret-aaaa", 2, 1, 10).Return(nil, transient),
		provider.EXPECT().GenerateSignedIntegers(gomock.Any(), "secret-aaaa", 2, 1, 10).Return(nil, transient),
		provider.EXPECT().GenerateSignedIntegers(gomock.Any(), "secret-aaaa", 2, 1, 10).Return(&proof, nil),
	)

	rec, err := coordinator.Execute(ctx, req)
	s.Require().NoError(err)

	s.Equal([]int{3, 6}, rec.Numbers())
	s.Require().Len(rec.Winners, 2)
	s.Equal("carol", rec.Winners[0].Handle)
	s.Equal(raffle.UnassignedHandle, rec.Winners[1].Handle)
	s.Equal([]time.Duration{5 * time.Minute, 5 * time.Minute}, clk.Waits())

	entry, ok := s.store.LedgerEntry("abc123")
	s.Require().True(ok)
	s.Equal(raffle.LedgerSucceeded, entry.Status)
	s.Len(s.store.Records(), 1)

	// a second run is stopped by the ledger before the provider is called again
	again, err := coordinator.Execute(ctx, req)
	s.Nil(again)
	s.ErrorIs(err, errs.ErrDuplicateDraw)
	s.Len(s.store.Records(), 1)
}

func (s *DrawCoordinatorTestSuite) TestExecute_Duplicate() {
	ctx := context.Background()
	req, _ := s.request(nil)
	s.store.SeedLedger(raffle.LedgerEntry{RaffleKey: "abc123", Status: raffle.LedgerSucceeded})

	// no EXPECT: any resolver or randomness call fails the test
	rec, err := s.coordinator.Execute(ctx, req)

	s.Nil(rec)
	s.ErrorIs(err, errs.ErrDuplicateDraw)
	s.Empty(s.store.Records())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.DrawsTotal.WithLabelValues("duplicate")))
}

func (s *DrawCoordinatorTestSuite) TestExecute_Override() {
	ctx := context.Background()
	req, b := s.request(func(b *builder.RaffleBuilder) { b.Override = true })
	s.store.SeedLedger(raffle.LedgerEntry{RaffleKey: "abc123", Status: raffle.LedgerSucceeded})
	proof := builder.NewProof(1, 10, 1, 2)

	s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
	s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 10, 2).Return(&proof, nil).Times(1)

	rec, err := s.coordinator.Execute(ctx, req)
	s.Require().NoError(err)
	s.True(rec.Request.Override)

	entry, _ := s.store.LedgerEntry("abc123")
	s.Equal(raffle.LedgerSucceeded, entry.Status)
}

func (s *DrawCoordinatorTestSuite) TestExecute_FailuresReleaseTheMarker() {
	ctx := context.Background()

	s.Run("content unavailable", func() {
		s.SetupTest()
		req, _ := s.request(nil)
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).
			Return(nil, errs.Mark(errors.New("404"), errs.ErrContentUnavailable)).Times(1)

		_, err := s.coordinator.Execute(ctx, req)

		s.True(errs.Is(err, errs.ErrContentUnavailable))
		s.assertReleased("abc123")
	})

	s.Run("more winners than slots", func() {
		s.SetupTest()
		req, b := s.request(func(b *builder.RaffleBuilder) { b.TotalSlots = 2; b.WinnerCount = 3 })
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 2).Return(b.BuildResolution(), nil).Times(1)

		_, err := s.coordinator.Execute(ctx, req)

		s.True(errs.Is(err, errs.ErrInsufficientParticipants))
		s.assertReleased("abc123")
	})

	s.Run("quota exhausted", func() {
		s.SetupTest()
		req, b := s.request(nil)
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
		s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 10, 2).
			Return(nil, errs.Wrap(errs.ErrQuotaExhausted, "2 keys")).Times(1)

		_, err := s.coordinator.Execute(ctx, req)

		s.ErrorIs(err, errs.ErrQuotaExhausted)
		s.assertReleased("abc123")
	})

	s.Run("malformed proof", func() {
		s.SetupTest()
		req, b := s.request(nil)
		short := builder.NewProof(1, 10, 4)
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
		s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 10, 2).Return(&short, nil).Times(1)

		_, err := s.coordinator.Execute(ctx, req)

		s.True(errs.Is(err, errs.ErrProviderError))
		s.assertReleased("abc123")
	})

	s.Run("record commit fails", func() {
		s.SetupTest()
		req, b := s.request(nil)
		proof := builder.NewProof(1, 10, 3, 6)
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
		s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 10, 2).Return(&proof, nil).Times(1)
		s.store.FailOn(memstore.OpInsertRecord, errors.New("disk full"))

		_, err := s.coordinator.Execute(ctx, req)

		s.True(errs.Is(err, errs.ErrPersistenceFailure))
		s.assertReleased("abc123")
	})

	s.Run("caller gives up while waiting for randomness", func() {
		s.SetupTest()
		req, b := s.request(nil)
		cctx, cancel := context.WithCancel(ctx)
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
		s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 10, 2).
			DoAndReturn(func(context.Context, int, int, int) (*raffle.RandomnessProof, error) {
				cancel()
				return nil, context.Canceled
			}).Times(1)

		_, err := s.coordinator.Execute(cctx, req)

		s.ErrorIs(err, context.Canceled)
		s.assertReleased("abc123")
	})
}

func (s *DrawCoordinatorTestSuite) TestExecute_LedgerCommitFailureKeepsTheMarker() {
	ctx := context.Background()
	req, b := s.request(nil)
	proof := builder.NewProof(1, 10, 3, 6)
	s.mockResolver.EXPECT().Resolve(gomock.Any(), "abc123", 10).Return(b.BuildResolution(), nil).Times(1)
	s.mockRandomness.EXPECT().ObtainRandomness(gomock.Any(), 1, 10, 2).Return(&proof, nil).Times(1)
	s.store.FailOn(memstore.OpMarkSucceeded, errors.New("connection reset"))

	_, err := s.coordinator.Execute(ctx, req)

	s.True(errs.Is(err, errs.ErrPersistenceFailure))
	s.Len(s.store.Records(), 1)
	entry, ok := s.store.LedgerEntry("abc123")
	s.Require().True(ok)
	s.Equal(raffle.LedgerInProgress, entry.Status)
}
