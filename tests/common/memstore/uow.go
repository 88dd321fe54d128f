//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork for use-case tests. Each Within
// call works on a copy of the state that is kept only when fn succeeds.
package memstore

import (
	"context"
	"sync"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/infra"
	sqlc "raffle-draw/internal/infra/sqlc/generated"
	"raffle-draw/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Op string

const (
	OpInsertLedger   Op = "ledger.insert"
	OpMarkSucceeded  Op = "ledger.mark_succeeded"
	OpDeleteLedger   Op = "ledger.delete"
	OpInsertRecord   Op = "verification.insert"
	OpDeleteRecords  Op = "verification.delete_all"
	OpReleaseAll     Op = "ledger.release_all"
	OpGetLedgerEntry Op = "ledger.get"
)

type state struct {
	ledger  map[string]raffle.LedgerEntry
	records map[uuid.UUID]raffle.VerificationRecord
}

func (s state) clone() state {
	c := state{
		ledger:  make(map[string]raffle.LedgerEntry, len(s.ledger)),
		records: make(map[uuid.UUID]raffle.VerificationRecord, len(s.records)),
	}
	for k, v := range s.ledger {
		c.ledger[k] = v
	}
	for k, v := range s.records {
		c.records[k] = v
	}
	return c
}

type Store struct {
	mu       sync.Mutex
	state    state
	failures map[Op]error
	calls    map[Op]int
}

func New() *Store {
	return &Store{
		state: state{
			ledger:  map[string]raffle.LedgerEntry{},
			records: map[uuid.UUID]raffle.VerificationRecord{},
		},
		failures: map[Op]error{},
		calls:    map[Op]int{},
	}
}

// FailOn makes every later op return err until cleared with a nil err.
func (s *Store) FailOn(op Op, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) Calls(op Op) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *Store) SeedLedger(e raffle.LedgerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ledger[e.RaffleKey] = e
}

func (s *Store) LedgerEntry(key string) (raffle.LedgerEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.ledger[key]
	return e, ok
}

func (s *Store) Records() []raffle.VerificationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]raffle.VerificationRecord, 0, len(s.state.records))
	for _, r := range s.state.records {
		out = append(out, r)
	}
	return out
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &memTx{store: s, state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type memTx struct {
	store *Store
	state state
}

func (t *memTx) Ledger() shared.LedgerRepository              { return ledgerRepo{t} }
func (t *memTx) Verifications() shared.VerificationRepository { return verificationRepo{t} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

// call runs with the store lock already held by Within.
func (t *memTx) call(op Op) error {
	t.store.calls[op]++
	return t.store.failures[op]
}

type ledgerRepo struct{ tx *memTx }

func (r ledgerRepo) InsertInProgress(_ context.Context, _ sqlc.DBTX, raffleKey, requester string, now time.Time) (bool, error) {
	if err := r.tx.call(OpInsertLedger); err != nil {
		return false, infra.WrapRepoErr("failed to insert ledger entry", err)
	}
	if _, ok := r.tx.state.ledger[raffleKey]; ok {
		return false, nil
	}
	r.tx.state.ledger[raffleKey] = raffle.LedgerEntry{
		RaffleKey: raffleKey,
		Status:    raffle.LedgerInProgress,
		Requester: requester,
		UpdatedAt: now,
	}
	return true, nil
}

func (r ledgerRepo) Get(_ context.Context, _ sqlc.DBTX, raffleKey string) (*raffle.LedgerEntry, error) {
	if err := r.tx.call(OpGetLedgerEntry); err != nil {
		return nil, infra.WrapRepoErr("failed to get ledger entry", err)
	}
	e, ok := r.tx.state.ledger[raffleKey]
	if !ok {
		return nil, infra.WrapRepoErr("ledger entry not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &e, nil
}

func (r ledgerRepo) MarkSucceeded(_ context.Context, _ sqlc.DBTX, raffleKey, requester string, now time.Time) error {
	if err := r.tx.call(OpMarkSucceeded); err != nil {
		return infra.WrapRepoErr("failed to mark ledger entry succeeded", err)
	}
	r.tx.state.ledger[raffleKey] = raffle.LedgerEntry{
		RaffleKey: raffleKey,
		Status:    raffle.LedgerSucceeded,
		Requester: requester,
		UpdatedAt: now,
	}
	return nil
}

func (r ledgerRepo) DeleteInProgress(_ context.Context, _ sqlc.DBTX, raffleKey string) (int64, error) {
	if err := r.tx.call(OpDeleteLedger); err != nil {
		return 0, infra.WrapRepoErr("failed to delete in-progress ledger entry", err)
	}
	e, ok := r.tx.state.ledger[raffleKey]
	if !ok || e.Status != raffle.LedgerInProgress {
		return 0, nil
	}
	delete(r.tx.state.ledger, raffleKey)
	return 1, nil
}

func (r ledgerRepo) DeleteAllInProgress(_ context.Context, _ sqlc.DBTX) (int64, error) {
	if err := r.tx.call(OpReleaseAll); err != nil {
		return 0, infra.WrapRepoErr("failed to release in-progress ledger entries", err)
	}
	var n int64
	for k, e := range r.tx.state.ledger {
		if e.Status == raffle.LedgerInProgress {
			delete(r.tx.state.ledger, k)
			n++
		}
	}
	return n, nil
}

type verificationRepo struct{ tx *memTx }

func (r verificationRepo) Insert(_ context.Context, _ sqlc.DBTX, rec *raffle.VerificationRecord) (bool, error) {
	if err := r.tx.call(OpInsertRecord); err != nil {
		return false, infra.WrapRepoErr("failed to insert verification record", err)
	}
	if _, ok := r.tx.state.records[rec.DrawID]; ok {
		return false, nil
	}
	r.tx.state.records[rec.DrawID] = *rec
	return true, nil
}

func (r verificationRepo) DeleteAll(_ context.Context, _ sqlc.DBTX) (int64, error) {
	if err := r.tx.call(OpDeleteRecords); err != nil {
		return 0, infra.WrapRepoErr("failed to purge verification records", err)
	}
	n := int64(len(r.tx.state.records))
	r.tx.state.records = map[uuid.UUID]raffle.VerificationRecord{}
	return n, nil
}
