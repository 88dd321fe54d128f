//go:build unit

package raffle_test

import (
	"testing"

	"raffle-draw/internal/domain/raffle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPostID(t *testing.T) {
	valid := map[string]string{
		"https://www.reddit.com/r/pkmntcgtrades/comments/1abcde/booster_box_raffle/": "1abcde",
		"https://old.reddit.com/r/pkmntcgtrades/comments/1ABCDE/":                    "1abcde",
		"https://m.reddit.com/r/sub/comments/q9z8/x":                                 "q9z8",
		"https://reddit.com/comments/q9z8":                                           "q9z8",
		"http://redd.it/q9z8":                                                        "q9z8",
		"  https://redd.it/q9z8/  ":                                                  "q9z8",
	}
	for in, want := range valid {
		got, err := raffle.ExtractPostID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	invalid := []string{
		"",
		"reddit.com/r/sub/comments/abc",
		"ftp://reddit.com/r/sub/comments/abc",
		"https://notreddit.com/r/sub/comments/abc",
		"https://www.reddit.com/r/sub/",
		"https://redd.it/",
	}
	for _, in := range invalid {
		_, err := raffle.ExtractPostID(in)
		assert.ErrorIs(t, err, raffle.ErrInvalidSourceURL, in)
	}
}

func TestParseSlotsFromTitle(t *testing.T) {
	n, ok := raffle.ParseSlotsFromTitle("[NM] Evolving Skies booster box | 306 Spots @ $1/ea")
	require.True(t, ok)
	assert.Equal(t, 306, n)

	n, ok = raffle.ParseSlotsFromTitle("mini raffle 12 spots")
	require.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = raffle.ParseSlotsFromTitle("raffle with no count")
	assert.False(t, ok)

	_, ok = raffle.ParseSlotsFromTitle("0 spots")
	assert.False(t, ok)
}
