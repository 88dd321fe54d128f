package raffle

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// "12 /u/name **PAID**", "12 u/name paid", "12. u/name", "12 | u/name | PAID"
var assignmentPattern = regexp.MustCompile(`(?i)^(\d+)[.)]?\s+/?u/([\w-]+)(?:\s+[*_~]*(paid)[*_~]*)?`)

var separatorReplacer = strings.NewReplacer("|", " ", ",", " ", "\t", " ")

type SlotAssignment struct {
	Slot   int    `json:"slot"`
	Handle string `json:"handle"`
	Paid   bool   `json:"paid"`
}

// ParseAssignments scans text line by line. Lines that do not match are skipped.
func ParseAssignments(text string) []SlotAssignment {
	var out []SlotAssignment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(separatorReplacer.Replace(line))
		m := assignmentPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		slot, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, SlotAssignment{
			Slot:   slot,
			Handle: m[2],
			Paid:   m[3] != "",
		})
	}
	return out
}

type Roster struct {
	totalSlots int
	bySlot     map[int]SlotAssignment
	held       map[string]int
}

// NewRoster keeps assignments inside 1..totalSlots and returns the rest as
// discarded. A slot listed twice keeps its last assignment.
func NewRoster(totalSlots int, assignments []SlotAssignment) (*Roster, []SlotAssignment) {
	r := &Roster{
		totalSlots: totalSlots,
		bySlot:     make(map[int]SlotAssignment, len(assignments)),
		held:       make(map[string]int),
	}

	var discarded []SlotAssignment
	for _, a := range assignments {
		if a.Slot < 1 || a.Slot > totalSlots {
			discarded = append(discarded, a)
			continue
		}
		if prev, ok := r.bySlot[a.Slot]; ok {
			r.held[strings.ToLower(prev.Handle)]--
		}
		r.bySlot[a.Slot] = a
		r.held[strings.ToLower(a.Handle)]++
	}
	return r, discarded
}

func (r *Roster) TotalSlots() int { return r.totalSlots }
func (r *Roster) Len() int        { return len(r.bySlot) }
func (r *Roster) Empty() bool     { return len(r.bySlot) == 0 }

func (r *Roster) Lookup(slot int) (SlotAssignment, bool) {
	a, ok := r.bySlot[slot]
	return a, ok
}

// SlotsHeld counts the slots claimed by handle, ignoring case.
func (r *Roster) SlotsHeld(handle string) int {
	return r.held[strings.ToLower(handle)]
}

func (r *Roster) Assignments() []SlotAssignment {
	out := make([]SlotAssignment, 0, len(r.bySlot))
	for _, a := range r.bySlot {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// Resolution is what participant resolution hands back for one post.
type Resolution struct {
	Roster           *Roster
	Source           SourceInfo
	Discarded        []SlotAssignment
	ExternalDocument string
}
