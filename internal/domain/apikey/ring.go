// Package apikey tracks per-key daily request usage for the randomness provider
// and picks the next key with remaining quota.
package apikey

import (
	"fmt"
	"sync/atomic"
	"time"

	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
)

var (
	ErrNoKeys          = errs.New("at least one api key is required")
	ErrInvalidQuota    = errs.New("daily quota must be positive")
	ErrInvalidResetUTC = errs.New("reset hour must be between 0 and 23")
)

// State is the owned usage record for one key. Secret never leaves the ring.
type State struct {
	ID     string
	Secret string
	Used   int64
	Quota  int64
}

type Usage struct {
	ID        string    `json:"id"`
	Used      int64     `json:"used"`
	Quota     int64     `json:"quota"`
	Remaining int64     `json:"remaining"`
	Exhausted bool      `json:"exhausted"`
	NextReset time.Time `json:"nextReset"`
}

type entry struct {
	id     string
	secret string
	quota  int64
	used   atomic.Int64
}

// Ring rotates keys round-robin, skipping keys that have used their daily quota.
// Usage is reset once per day at resetHour UTC; the reset is applied lazily by
// whichever caller first observes the new boundary.
type Ring struct {
	entries   []*entry
	cursor    atomic.Uint64
	watermark atomic.Int64
	resetHour int
	clock     clock.Clock
}

func NewRing(states []State, resetHourUTC int, clk clock.Clock) (*Ring, error) {
	if len(states) == 0 {
		return nil, ErrNoKeys
	}
	if resetHourUTC < 0 || resetHourUTC > 23 {
		return nil, ErrInvalidResetUTC
	}

	r := &Ring{
		entries:   make([]*entry, 0, len(states)),
		resetHour: resetHourUTC,
		clock:     clk,
	}
	for _, s := range states {
		if s.Quota <= 0 {
			return nil, errs.Wrap(ErrInvalidQuota, s.ID)
		}
		e := &entry{id: s.ID, secret: s.Secret, quota: s.Quota}
		e.used.Store(s.Used)
		r.entries = append(r.entries, e)
	}
	r.watermark.Store(r.boundary(clk.Now()).UnixNano())
	return r, nil
}

// StatesFromSecrets builds fresh zero-usage states with display ids that do not
// reveal the secret.
func StatesFromSecrets(secrets []string, quota int64) []State {
	states := make([]State, 0, len(secrets))
	for i, s := range secrets {
		states = append(states, State{
			ID:     MaskID(i, s),
			Secret: s,
			Quota:  quota,
		})
	}
	return states
}

func MaskID(index int, secret string) string {
	suffix := secret
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("key-%d-%s", index+1, suffix)
}

// boundary is the most recent reset instant at or before now.
func (r *Ring) boundary(now time.Time) time.Time {
	now = now.UTC()
	b := time.Date(now.Year(), now.Month(), now.Day(), r.resetHour, 0, 0, 0, time.UTC)
	if now.Before(b) {
		b = b.AddDate(0, 0, -1)
	}
	return b
}

// MaybeReset zeroes every counter when a reset boundary has passed since the
// last reset. It reports whether this call performed the reset.
func (r *Ring) MaybeReset() bool {
	b := r.boundary(r.clock.Now()).UnixNano()
	for {
		last := r.watermark.Load()
		if b <= last {
			return false
		}
		if r.watermark.CompareAndSwap(last, b) {
			for _, e := range r.entries {
				e.used.Store(0)
			}
			return true
		}
	}
}

func (r *Ring) NextReset() time.Time {
	return r.boundary(r.clock.Now()).AddDate(0, 0, 1)
}

type Lease struct {
	index  int
	id     string
	secret string
}

func (l Lease) ID() string     { return l.id }
func (l Lease) Secret() string { return l.secret }

// Next returns the first key at or after the cursor with quota left.
// It never blocks: when every key is spent it fails with ErrQuotaExhausted.
func (r *Ring) Next() (Lease, error) {
	r.MaybeReset()

	n := len(r.entries)
	start := int(r.cursor.Load() % uint64(n))
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		e := r.entries[idx]
		if e.used.Load() < e.quota {
			return Lease{index: idx, id: e.id, secret: e.secret}, nil
		}
	}
	return Lease{}, errs.Wrap(errs.ErrQuotaExhausted, fmt.Sprintf("all %d keys used their daily quota", n))
}

// RecordSuccess charges one request to the leased key, moves the cursor past it
// and returns the key's new usage.
func (r *Ring) RecordSuccess(l Lease) int64 {
	used := r.entries[l.index].used.Add(1)
	r.advancePast(l.index)
	return used
}

// Exhaust marks the leased key spent for the rest of the day. Used when the
// provider rejects the key even though local accounting had quota left.
func (r *Ring) Exhaust(l Lease) {
	e := r.entries[l.index]
	e.used.Store(e.quota)
	r.advancePast(l.index)
}

func (r *Ring) advancePast(index int) {
	r.cursor.Store(uint64((index + 1) % len(r.entries)))
}

func (r *Ring) Len() int { return len(r.entries) }

func (r *Ring) Usage() []Usage {
	r.MaybeReset()
	next := r.NextReset()

	out := make([]Usage, 0, len(r.entries))
	for _, e := range r.entries {
		used := e.used.Load()
		remaining := e.quota - used
		if remaining < 0 {
			remaining = 0
		}
		out = append(out, Usage{
			ID:        e.id,
			Used:      used,
			Quota:     e.quota,
			Remaining: remaining,
			Exhausted: remaining == 0,
			NextReset: next,
		})
	}
	return out
}
