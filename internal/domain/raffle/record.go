package raffle

import (
	"time"

	"github.com/google/uuid"
)

const UnassignedHandle = "unassigned"

type Winner struct {
	Slot     int     `json:"slot"`
	Handle   string  `json:"handle"`
	Assigned bool    `json:"assigned"`
	Paid     bool    `json:"paid"`
	Share    float64 `json:"share"`
}

// SelectWinners maps each drawn number to its slot holder. Unclaimed slots
// still win and are reported as unassigned. Share is the fraction of all
// slots held by the winning handle.
func SelectWinners(numbers []int, roster *Roster) []Winner {
	winners := make([]Winner, 0, len(numbers))
	for _, n := range numbers {
		a, ok := roster.Lookup(n)
		if !ok {
			winners = append(winners, Winner{Slot: n, Handle: UnassignedHandle})
			continue
		}
		winners = append(winners, Winner{
			Slot:     n,
			Handle:   a.Handle,
			Assigned: true,
			Paid:     a.Paid,
			Share:    float64(roster.SlotsHeld(a.Handle)) / float64(roster.TotalSlots()),
		})
	}
	return winners
}

// VerificationRecord is immutable after commit.
type VerificationRecord struct {
	DrawID    uuid.UUID        `json:"drawId"`
	RaffleKey string           `json:"raffleKey"`
	Request   RequestSnapshot  `json:"request"`
	Roster    []SlotAssignment `json:"roster"`
	Winners   []Winner         `json:"winners"`
	Proof     RandomnessProof  `json:"proof"`
	Source    SourceInfo       `json:"source"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NewVerificationRecord snapshots the winners' roster entries, not the whole roster.
func NewVerificationRecord(drawID uuid.UUID, req *RaffleRequest, proof RandomnessProof, resolution *Resolution, now time.Time) *VerificationRecord {
	winners := SelectWinners(proof.Numbers, resolution.Roster)

	relevant := make([]SlotAssignment, 0, len(winners))
	for _, w := range winners {
		if a, ok := resolution.Roster.Lookup(w.Slot); ok {
			relevant = append(relevant, a)
		}
	}

	return &VerificationRecord{
		DrawID:    drawID,
		RaffleKey: req.RaffleKey(),
		Request:   req.Snapshot(),
		Roster:    relevant,
		Winners:   winners,
		Proof:     proof,
		Source:    resolution.Source,
		CreatedAt: now,
	}
}

func (r *VerificationRecord) VerificationPayload() (string, error) {
	return r.Proof.VerificationPayload()
}

func (r *VerificationRecord) Numbers() []int {
	return r.Proof.Numbers
}
