//go:build unit

package raffle_test

import (
	"testing"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RaffleBuilder)
	errIs  error
}

func TestRaffleRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRaffleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "abc123", actual.RaffleKey())
		assert.Equal(t, 10, actual.TotalSlots())
		assert.Equal(t, 2, actual.WinnerCount())
		assert.False(t, actual.Override())
	})

	t.Run("slot range", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero slots", mutate: func(b *builder.RaffleBuilder) { b.TotalSlots = 0 }, errIs: raffle.ErrSlotsOutOfRange},
			{name: "one slot", mutate: func(b *builder.RaffleBuilder) { b.TotalSlots = 1; b.WinnerCount = 1 }},
			{name: "maximum slots", mutate: func(b *builder.RaffleBuilder) { b.TotalSlots = raffle.MaxSlots }},
			{name: "above maximum", mutate: func(b *builder.RaffleBuilder) { b.TotalSlots = raffle.MaxSlots + 1 }, errIs: raffle.ErrSlotsOutOfRange},
		})
	})

	t.Run("winner range", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero winners", mutate: func(b *builder.RaffleBuilder) { b.WinnerCount = 0 }, errIs: raffle.ErrWinnersOutOfRange},
			{name: "maximum winners", mutate: func(b *builder.RaffleBuilder) { b.TotalSlots = 500; b.WinnerCount = raffle.MaxWinners }},
			{name: "above maximum", mutate: func(b *builder.RaffleBuilder) { b.TotalSlots = 500; b.WinnerCount = raffle.MaxWinners + 1 }, errIs: raffle.ErrWinnersOutOfRange},
		})
	})

	t.Run("source and requester", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "short link", mutate: func(b *builder.RaffleBuilder) { b.SourceURL = "https://redd.it/abc123" }},
			{name: "not reddit", mutate: func(b *builder.RaffleBuilder) { b.SourceURL = "https://example.com/comments/abc123" }, errIs: raffle.ErrInvalidSourceURL},
			{name: "empty requester", mutate: func(b *builder.RaffleBuilder) { b.Requester.ID = " " }, errIs: raffle.ErrMissingRequester},
		})
	})

	t.Run("validation errors are marked invalid", func(t *testing.T) {
		_, err := builder.NewRaffleBuilder().With(func(b *builder.RaffleBuilder) { b.TotalSlots = 0 }).BuildDomain()
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidRaffleRequest))
	})

	t.Run("winner ratio", func(t *testing.T) {
		assert.NoError(t, raffle.ValidateWinnerRatio(1, 1))
		err := raffle.ValidateWinnerRatio(3, 2)
		require.ErrorIs(t, err, raffle.ErrTooManyWinners)
		assert.True(t, errs.Is(err, errs.ErrInsufficientParticipants))
	})

	t.Run("snapshot", func(t *testing.T) {
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		req, err := raffle.NewRaffleRequest("https://www.reddit.com/r/pkmntcgtrades/comments/xyz9/title/", 5, 1,
			raffle.Requester{ID: "mod-1", Name: "mod"}, true, now)
		require.NoError(t, err)

		snap := req.Snapshot()
		assert.Equal(t, "xyz9", snap.RaffleKey)
		assert.Equal(t, 5, snap.TotalSlots)
		assert.True(t, snap.Override)
		assert.Equal(t, now, snap.SubmittedAt)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRaffleBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
