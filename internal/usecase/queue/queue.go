// Package queue serializes draw requests through a single worker with a fixed
// pause between consecutive draws.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/pkg/metrics"

	"github.com/ef-ds/deque"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

//go:generate mockgen -source=queue.go -destination=../../../tests/mock/queue/queue.go -package=queuemock

type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type Ticket struct {
	ID          uuid.UUID
	RaffleKey   string
	Requester   string
	Status      Status
	Record      *raffle.VerificationRecord
	Err         error
	SubmittedAt time.Time
	StartedAt   time.Time
	FinishedAt  time.Time
}

type Ack struct {
	TicketID uuid.UUID
	Position int
}

type Executor interface {
	Execute(ctx context.Context, req *raffle.RaffleRequest) (*raffle.VerificationRecord, error)
}

// Sink receives every finished ticket, successful or not.
type Sink interface {
	Deliver(ctx context.Context, t Ticket)
}

type Submitter interface {
	Submit(req *raffle.RaffleRequest) (Ack, error)
	Ticket(id uuid.UUID) (Ticket, error)
	Len() int
}

type job struct {
	ticket *Ticket
	req    *raffle.RaffleRequest
}

type Queue struct {
	mu           sync.Mutex
	pending      deque.Deque
	tickets      *lru.Cache[uuid.UUID, *Ticket]
	closed       bool
	lastFinished time.Time

	wake     chan struct{}
	executor Executor
	sink     Sink
	clock    clock.Clock
	pacing   time.Duration
	metrics  *metrics.Metrics

	cancel context.CancelFunc
	done   chan struct{}
}

func New(executor Executor, sink Sink, clk clock.Clock, pacing time.Duration, ticketCacheSize int, m *metrics.Metrics) (*Queue, error) {
	tickets, err := lru.New[uuid.UUID, *Ticket](ticketCacheSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create ticket cache")
	}
	return &Queue{
		tickets:  tickets,
		wake:     make(chan struct{}, 1),
		executor: executor,
		sink:     sink,
		clock:    clk,
		pacing:   pacing,
		metrics:  m,
	}, nil
}

// Submit enqueues req and returns at once. Position counts the requests
// waiting ahead of this one, plus this one.
func (q *Queue) Submit(req *raffle.RaffleRequest) (Ack, error) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return Ack{}, errs.ErrQueueClosed
	}

	t := &Ticket{
		ID:          uuid.New(),
		RaffleKey:   req.RaffleKey(),
		Requester:   req.Requester().ID,
		Status:      StatusQueued,
		SubmittedAt: q.clock.Now(),
	}
	q.tickets.Add(t.ID, t)
	q.pending.PushBack(&job{ticket: t, req: req})
	position := q.pending.Len()
	q.mu.Unlock()

	q.metrics.QueueDepth.Set(float64(position))
	q.signal()

	slog.Info("draw request queued",
		"ticket_id", t.ID.String(),
		"raffle_key", t.RaffleKey,
		"position", position)
	return Ack{TicketID: t.ID, Position: position}, nil
}

func (q *Queue) Ticket(id uuid.UUID) (Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	t, ok := q.tickets.Get(id)
	if !ok {
		return Ticket{}, errs.ErrTicketNotFound
	}
	return *t, nil
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending.Len()
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Run processes requests one at a time until ctx is done. Requests still
// waiting at that point are failed with ErrQueueClosed.
func (q *Queue) Run(ctx context.Context) {
	defer q.drain()

	for {
		if q.Len() == 0 {
			select {
			case <-ctx.Done():
				return
			case <-q.wake:
				continue
			}
		}
		if err := q.pace(ctx); err != nil {
			return
		}
		j := q.pop()
		if j == nil {
			continue
		}
		q.process(ctx, j)
	}
}

func (q *Queue) pace(ctx context.Context) error {
	q.mu.Lock()
	last := q.lastFinished
	q.mu.Unlock()

	if last.IsZero() || q.pacing <= 0 {
		return ctx.Err()
	}
	wait := q.pacing - q.clock.Now().Sub(last)
	if wait <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-q.clock.After(wait):
		return nil
	}
}

func (q *Queue) pop() *job {
	q.mu.Lock()
	defer q.mu.Unlock()
	v, ok := q.pending.PopFront()
	if !ok {
		return nil
	}
	q.metrics.QueueDepth.Set(float64(q.pending.Len()))
	j := v.(*job)
	j.ticket.Status = StatusRunning
	j.ticket.StartedAt = q.clock.Now()
	return j
}

func (q *Queue) process(ctx context.Context, j *job) {
	rec, err := q.execute(ctx, j.req)

	q.mu.Lock()
	now := q.clock.Now()
	j.ticket.FinishedAt = now
	if err != nil {
		j.ticket.Status = StatusFailed
		j.ticket.Err = err
	} else {
		j.ticket.Status = StatusSucceeded
		j.ticket.Record = rec
	}
	q.lastFinished = now
	snapshot := *j.ticket
	q.mu.Unlock()

	if err != nil {
		slog.Error("draw request failed",
			"ticket_id", snapshot.ID.String(),
			"raffle_key", snapshot.RaffleKey,
			"error", err.Error())
	}
	q.sink.Deliver(ctx, snapshot)
}

// execute keeps one bad request from taking the worker down.
func (q *Queue) execute(ctx context.Context, req *raffle.RaffleRequest) (rec *raffle.VerificationRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.New(fmt.Sprintf("draw panicked: %v", r))
		}
	}()
	return q.executor.Execute(ctx, req)
}

func (q *Queue) drain() {
	q.mu.Lock()
	q.closed = true
	var dropped []Ticket
	for q.pending.Len() > 0 {
		v, _ := q.pending.PopFront()
		j := v.(*job)
		j.ticket.Status = StatusFailed
		j.ticket.Err = errs.ErrQueueClosed
		j.ticket.FinishedAt = q.clock.Now()
		dropped = append(dropped, *j.ticket)
	}
	q.mu.Unlock()

	q.metrics.QueueDepth.Set(0)
	for _, t := range dropped {
		q.sink.Deliver(context.Background(), t)
	}
}

// Start launches the worker. Stop cancels it and waits for the in-flight draw
// to unwind.
func (q *Queue) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	q.cancel = cancel
	q.done = make(chan struct{})
	go func() {
		defer close(q.done)
		q.Run(ctx)
	}()
}

func (q *Queue) Stop(ctx context.Context) error {
	if q.cancel == nil {
		return nil
	}
	q.cancel()
	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogSink reports outcomes to the structured log.
type LogSink struct{}

func (LogSink) Deliver(_ context.Context, t Ticket) {
	if t.Status != StatusSucceeded || t.Record == nil {
		slog.Warn("draw outcome",
			"ticket_id", t.ID.String(),
			"raffle_key", t.RaffleKey,
			"status", string(t.Status))
		return
	}

	winners := make([]string, 0, len(t.Record.Winners))
	for _, w := range t.Record.Winners {
		winners = append(winners, fmt.Sprintf("%d:%s", w.Slot, w.Handle))
	}
	slog.Info("draw outcome",
		"ticket_id", t.ID.String(),
		"raffle_key", t.RaffleKey,
		"status", string(t.Status),
		"draw_id", t.Record.DrawID.String(),
		"winners", winners)
}
