//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"raffle-draw/internal/domain/raffle"
	reqdto "raffle-draw/internal/handler/dto/request"
	"raffle-draw/internal/infra/repository/converter"
	sqlc "raffle-draw/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

const DefaultPostURL = "https://www.reddit.com/r/testraffles/comments/abc123/booster_box_10_spots/"

type RaffleBuilder struct {
	SourceURL   string
	TotalSlots  int
	WinnerCount int
	Requester   raffle.Requester
	Override    bool
	Now         time.Time
	Assignments []raffle.SlotAssignment
	Source      raffle.SourceInfo
}

func NewRaffleBuilder() *RaffleBuilder {
	return &RaffleBuilder{
		SourceURL:   DefaultPostURL,
		TotalSlots:  10,
		WinnerCount: 2,
		Requester:   raffle.Requester{ID: "caller-1", Name: "Caller One"},
		Override:    false,
		Now:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Assignments: []raffle.SlotAssignment{
			{Slot: 1, Handle: "alice"},
			{Slot: 2, Handle: "bob", Paid: true},
			{Slot: 3, Handle: "carol"},
			{Slot: 4, Handle: "carol"},
		},
		Source: raffle.SourceInfo{
			PostID:    "abc123",
			Title:     "[NM] Booster box | 10 spots @ $5",
			Author:    "host",
			Permalink: "https://www.reddit.com/r/testraffles/comments/abc123/booster_box_10_spots/",
			Subreddit: "testraffles",
		},
	}
}

func (b *RaffleBuilder) With(mutate func(*RaffleBuilder)) *RaffleBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RaffleBuilder) BuildDomain() (*raffle.RaffleRequest, error) {
	return raffle.NewRaffleRequest(b.SourceURL, b.TotalSlots, b.WinnerCount, b.Requester, b.Override, b.Now)
}

func (b *RaffleBuilder) BuildResolution() *raffle.Resolution {
	roster, discarded := raffle.NewRoster(b.TotalSlots, b.Assignments)
	return &raffle.Resolution{
		Roster:    roster,
		Source:    b.Source,
		Discarded: discarded,
	}
}

// BuildRecord draws numbers against the builder's roster.
func (b *RaffleBuilder) BuildRecord(numbers ...int) (*raffle.VerificationRecord, error) {
	req, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	proof := NewProof(1, b.TotalSlots, numbers...)
	return raffle.NewVerificationRecord(uuid.New(), req, proof, b.BuildResolution(), b.Now), nil
}

func (b *RaffleBuilder) BuildInfra(numbers ...int) (sqlc.VerificationRecords, error) {
	rec, err := b.BuildRecord(numbers...)
	if err != nil {
		return sqlc.VerificationRecords{}, err
	}
	params, err := converter.RecordToInsertParams(rec)
	if err != nil {
		return sqlc.VerificationRecords{}, err
	}
	return sqlc.VerificationRecords{
		DrawID:         params.DrawID,
		RaffleKey:      params.RaffleKey,
		Request:        params.Request,
		Roster:         params.Roster,
		Winners:        params.Winners,
		Numbers:        params.Numbers,
		SourceInfo:     params.SourceInfo,
		SerialNumber:   params.SerialNumber,
		KeyID:          params.KeyID,
		HashedApiKey:   params.HashedApiKey,
		RandomPayload:  params.RandomPayload,
		Signature:      params.Signature,
		CompletionTime: params.CompletionTime,
		Requester:      params.Requester,
		CreatedAt:      params.CreatedAt,
	}, nil
}

func (b *RaffleBuilder) BuildDTO() reqdto.CreateDrawRequest {
	slots := b.TotalSlots
	return reqdto.CreateDrawRequest{
		URL:         b.SourceURL,
		TotalSlots:  &slots,
		WinnerCount: b.WinnerCount,
		Override:    b.Override,
	}
}

type signedRandom struct {
	Method         string `json:"method"`
	HashedAPIKey   string `json:"hashedApiKey"`
	N              int    `json:"n"`
	Min            int    `json:"min"`
	Max            int    `json:"max"`
	Replacement    bool   `json:"replacement"`
	Base           int    `json:"base"`
	Data           []int  `json:"data"`
	CompletionTime string `json:"completionTime"`
	SerialNumber   int64  `json:"serialNumber"`
}

// NewProof builds a provider proof whose signed object is shaped like the real one.
func NewProof(low, high int, numbers ...int) raffle.RandomnessProof {
	random := signedRandom{
		Method:         "generateSignedIntegers",
		HashedAPIKey:   "hashed-key",
		N:              len(numbers),
		Min:            low,
		Max:            high,
		Replacement:    false,
		Base:           10,
		Data:           numbers,
		CompletionTime: "2024-03-01 12:00:00Z",
		SerialNumber:   42,
	}
	raw, err := json.Marshal(random)
	if err != nil {
		panic(err)
	}
	return raffle.RandomnessProof{
		RangeLow:       low,
		RangeHigh:      high,
		Numbers:        numbers,
		SerialNumber:   random.SerialNumber,
		CompletionTime: random.CompletionTime,
		HashedAPIKey:   random.HashedAPIKey,
		Random:         raw,
		Signature:      "c2lnbmF0dXJl",
	}
}
