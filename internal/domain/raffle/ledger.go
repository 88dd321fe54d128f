package raffle

import (
	"sort"
	"time"
)

type LedgerStatus string

const (
	LedgerInProgress LedgerStatus = "in_progress"
	LedgerSucceeded  LedgerStatus = "succeeded"
)

func (s LedgerStatus) IsValid() bool {
	switch s {
	case LedgerInProgress, LedgerSucceeded:
		return true
	default:
		return false
	}
}

type LedgerEntry struct {
	RaffleKey string
	Status    LedgerStatus
	Requester string
	UpdatedAt time.Time
}

type BeginOutcome int

const (
	Admitted BeginOutcome = iota
	AlreadyDrawn
)

func (o BeginOutcome) String() string {
	if o == Admitted {
		return "admitted"
	}
	return "already_drawn"
}

type NumberCount struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// RollHistory counts how often each number was drawn on one UTC day.
type RollHistory struct {
	Day     time.Time     `json:"day"`
	Draws   int           `json:"draws"`
	Numbers int           `json:"numbers"`
	Counts  []NumberCount `json:"counts"`
}

// TallyRolls builds the history for day from the numbers of each draw. Counts
// are ordered by count, highest first, then by number.
func TallyRolls(day time.Time, draws [][]int) *RollHistory {
	d := day.UTC()
	h := &RollHistory{
		Day:    time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Draws:  len(draws),
		Counts: []NumberCount{},
	}
	seen := make(map[int]int)
	for _, numbers := range draws {
		h.Numbers += len(numbers)
		for _, n := range numbers {
			seen[n]++
		}
	}
	for n, c := range seen {
		h.Counts = append(h.Counts, NumberCount{Number: n, Count: c})
	}
	sort.Slice(h.Counts, func(i, j int) bool {
		if h.Counts[i].Count != h.Counts[j].Count {
			return h.Counts[i].Count > h.Counts[j].Count
		}
		return h.Counts[i].Number < h.Counts[j].Number
	})
	return h
}
