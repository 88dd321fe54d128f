package response

import (
	"log/slog"
	"time"

	"raffle-draw/internal/domain/apikey"
	"raffle-draw/internal/domain/raffle"

	"github.com/jinzhu/copier"
)

type KeyUsageResponse struct {
	ID        string    `json:"id"`
	Used      int64     `json:"used"`
	Quota     int64     `json:"quota"`
	Remaining int64     `json:"remaining"`
	Exhausted bool      `json:"exhausted"`
	NextReset time.Time `json:"nextReset"`
}

type KeyStatusResponse struct {
	Keys       []KeyUsageResponse `json:"keys"`
	QueueDepth int                `json:"queueDepth"`
}

func FromKeyUsage(usage []apikey.Usage, queueDepth int) *KeyStatusResponse {
	resp := &KeyStatusResponse{
		Keys:       []KeyUsageResponse{},
		QueueDepth: queueDepth,
	}
	if err := copier.Copy(&resp.Keys, usage); err != nil {
		slog.Error("failed to copy key usage", "error", err.Error())
	}
	return resp
}

type PurgeResponse struct {
	Purged int64 `json:"purged"`
}

type LedgerEntryResponse struct {
	RaffleKey string    `json:"raffleKey"`
	Status    string    `json:"status"`
	Requester string    `json:"requester"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromLedgerEntry(e *raffle.LedgerEntry) *LedgerEntryResponse {
	return &LedgerEntryResponse{
		RaffleKey: e.RaffleKey,
		Status:    string(e.Status),
		Requester: e.Requester,
		UpdatedAt: e.UpdatedAt,
	}
}
