package raffle

import (
	"strings"
	"time"

	"raffle-draw/internal/pkg/errs"
)

const (
	MinSlots   = 1
	MaxSlots   = 1_000_000
	MinWinners = 1
	MaxWinners = 100
)

var (
	ErrSlotsOutOfRange   = errs.Mark(errs.New("total slots must be between 1 and 1000000"), errs.ErrInvalidRaffleRequest)
	ErrWinnersOutOfRange = errs.Mark(errs.New("winner count must be between 1 and 100"), errs.ErrInvalidRaffleRequest)
	ErrMissingRequester  = errs.Mark(errs.New("requester identity is required"), errs.ErrInvalidRaffleRequest)
	ErrTooManyWinners    = errs.Mark(errs.New("winner count exceeds total slots"), errs.ErrInsufficientParticipants)
)

type Requester struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RaffleRequest is immutable once built.
type RaffleRequest struct {
	sourceURL   string
	raffleKey   string
	totalSlots  int
	winnerCount int
	requester   Requester
	override    bool
	submittedAt time.Time
}

func NewRaffleRequest(sourceURL string, totalSlots, winnerCount int, requester Requester, override bool, now time.Time) (*RaffleRequest, error) {
	postID, err := ExtractPostID(sourceURL)
	if err != nil {
		return nil, err
	}
	if totalSlots < MinSlots || totalSlots > MaxSlots {
		return nil, ErrSlotsOutOfRange
	}
	if winnerCount < MinWinners || winnerCount > MaxWinners {
		return nil, ErrWinnersOutOfRange
	}
	if strings.TrimSpace(requester.ID) == "" {
		return nil, ErrMissingRequester
	}

	return &RaffleRequest{
		sourceURL:   strings.TrimSpace(sourceURL),
		raffleKey:   postID,
		totalSlots:  totalSlots,
		winnerCount: winnerCount,
		requester:   requester,
		override:    override,
		submittedAt: now,
	}, nil
}

func (r *RaffleRequest) SourceURL() string      { return r.sourceURL }
func (r *RaffleRequest) RaffleKey() string      { return r.raffleKey }
func (r *RaffleRequest) TotalSlots() int        { return r.totalSlots }
func (r *RaffleRequest) WinnerCount() int       { return r.winnerCount }
func (r *RaffleRequest) Requester() Requester   { return r.requester }
func (r *RaffleRequest) Override() bool         { return r.override }
func (r *RaffleRequest) SubmittedAt() time.Time { return r.submittedAt }

// ValidateWinnerRatio fails when more winners are requested than there are slots.
func ValidateWinnerRatio(winnerCount, totalSlots int) error {
	if winnerCount > totalSlots {
		return ErrTooManyWinners
	}
	return nil
}

type RequestSnapshot struct {
	SourceURL   string    `json:"sourceUrl"`
	RaffleKey   string    `json:"raffleKey"`
	TotalSlots  int       `json:"totalSlots"`
	WinnerCount int       `json:"winnerCount"`
	Requester   Requester `json:"requester"`
	Override    bool      `json:"override"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (r *RaffleRequest) Snapshot() RequestSnapshot {
	return RequestSnapshot{
		SourceURL:   r.sourceURL,
		RaffleKey:   r.raffleKey,
		TotalSlots:  r.totalSlots,
		WinnerCount: r.winnerCount,
		Requester:   r.requester,
		Override:    r.override,
		SubmittedAt: r.submittedAt,
	}
}
