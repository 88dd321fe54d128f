//go:build unit

package raffle_test

import (
	"testing"

	"raffle-draw/internal/domain/raffle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseAssignments(t *testing.T) {
	text := `Spot list:

1 /u/alice **PAID**
2 u/bob
3 /u/carol paid
4. u/dave_99 __PAID__
5 | u/e-rin | PAID
not a spot line
7 someone without marker
`
	want := []raffle.SlotAssignment{
		{Slot: 1, Handle: "alice", Paid: true},
		{Slot: 2, Handle: "bob"},
		{Slot: 3, Handle: "carol", Paid: true},
		{Slot: 4, Handle: "dave_99", Paid: true},
		{Slot: 5, Handle: "e-rin", Paid: true},
	}

	got := raffle.ParseAssignments(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("assignments mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRoster(t *testing.T) {
	t.Run("out of range entries are discarded", func(t *testing.T) {
		roster, discarded := raffle.NewRoster(3, []raffle.SlotAssignment{
			{Slot: 1, Handle: "alice"},
			{Slot: 0, Handle: "zero"},
			{Slot: 4, Handle: "over"},
			{Slot: 3, Handle: "Alice"},
		})

		assert.Equal(t, 2, roster.Len())
		assert.Len(t, discarded, 2)
		assert.Equal(t, 2, roster.SlotsHeld("ALICE"))
		_, ok := roster.Lookup(2)
		assert.False(t, ok)
	})

	t.Run("later line wins for a repeated slot", func(t *testing.T) {
		roster, _ := raffle.NewRoster(5, []raffle.SlotAssignment{
			{Slot: 2, Handle: "bob"},
			{Slot: 2, Handle: "carol"},
		})

		a, ok := roster.Lookup(2)
		assert.True(t, ok)
		assert.Equal(t, "carol", a.Handle)
		assert.Equal(t, 0, roster.SlotsHeld("bob"))
		assert.Equal(t, 1, roster.SlotsHeld("carol"))
	})

	t.Run("assignments sorted by slot", func(t *testing.T) {
		roster, _ := raffle.NewRoster(5, []raffle.SlotAssignment{
			{Slot: 5, Handle: "e"}, {Slot: 1, Handle: "a"}, {Slot: 3, Handle: "c"},
		})
		got := roster.Assignments()
		assert.Equal(t, []int{1, 3, 5}, []int{got[0].Slot, got[1].Slot, got[2].Slot})
	})
}
