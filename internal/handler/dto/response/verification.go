package response

import (
	"log/slog"
	"time"

	"raffle-draw/internal/domain/raffle"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WinnerResponse struct {
	Slot     int     `json:"slot"`
	Handle   string  `json:"handle"`
	Assigned bool    `json:"assigned"`
	Paid     bool    `json:"paid"`
	Share    float64 `json:"share"`
}

type SourceResponse struct {
	PostID    string `json:"postId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Permalink string `json:"permalink"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Subreddit string `json:"subreddit"`
}

type ProofResponse struct {
	Numbers        []int  `json:"numbers"`
	SerialNumber   int64  `json:"serialNumber"`
	CompletionTime string `json:"completionTime"`
	HashedAPIKey   string `json:"hashedApiKey"`
	Signature      string `json:"signature"`
	Payload        string `json:"payload"`
}

type VerificationResponse struct {
	DrawID      uuid.UUID        `json:"drawId"`
	RaffleKey   string           `json:"raffleKey"`
	SourceURL   string           `json:"sourceUrl"`
	TotalSlots  int              `json:"totalSlots"`
	WinnerCount int              `json:"winnerCount"`
	Requester   string           `json:"requester"`
	Override    bool             `json:"override"`
	Winners     []WinnerResponse `json:"winners"`
	Source      SourceResponse   `json:"source"`
	Proof       ProofResponse    `json:"proof"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func FromVerificationRecord(rec *raffle.VerificationRecord) *VerificationResponse {
	resp := &VerificationResponse{
		DrawID:      rec.DrawID,
		RaffleKey:   rec.RaffleKey,
		SourceURL:   rec.Request.SourceURL,
		TotalSlots:  rec.Request.TotalSlots,
		WinnerCount: rec.Request.WinnerCount,
		Requester:   rec.Request.Requester.ID,
		Override:    rec.Request.Override,
		Winners:     []WinnerResponse{},
		CreatedAt:   rec.CreatedAt,
	}
	if err := copier.Copy(&resp.Winners, rec.Winners); err != nil {
		slog.Error("failed to copy winners", "draw_id", rec.DrawID.String(), "error", err.Error())
	}
	if err := copier.Copy(&resp.Source, &rec.Source); err != nil {
		slog.Error("failed to copy source info", "draw_id", rec.DrawID.String(), "error", err.Error())
	}
	if err := copier.Copy(&resp.Proof, &rec.Proof); err != nil {
		slog.Error("failed to copy proof", "draw_id", rec.DrawID.String(), "error", err.Error())
	}

	payload, err := rec.VerificationPayload()
	if err != nil {
		slog.Warn("verification payload not formattable", "draw_id", rec.DrawID.String(), "error", err.Error())
		payload = string(rec.Proof.Random)
	}
	resp.Proof.Payload = payload
	return resp
}

type NumberCountResponse struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

type RollHistoryResponse struct {
	Date    string                `json:"date"`
	Draws   int                   `json:"draws"`
	Numbers int                   `json:"numbers"`
	Counts  []NumberCountResponse `json:"counts"`
}

func FromRollHistory(h *raffle.RollHistory) *RollHistoryResponse {
	resp := &RollHistoryResponse{
		Date:    h.Day.Format(time.DateOnly),
		Draws:   h.Draws,
		Numbers: h.Numbers,
		Counts:  []NumberCountResponse{},
	}
	if err := copier.Copy(&resp.Counts, h.Counts); err != nil {
		slog.Error("failed to copy roll counts", "date", resp.Date, "error", err.Error())
	}
	return resp
}
