package response

import (
	"time"

	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/queue"

	"github.com/google/uuid"
)

type SubmitDrawResponse struct {
	TicketID   uuid.UUID `json:"ticketId"`
	Position   int       `json:"position"`
	RaffleKey  string    `json:"raffleKey"`
	TotalSlots int       `json:"totalSlots"`
}

type TicketResponse struct {
	ID          uuid.UUID             `json:"id"`
	RaffleKey   string                `json:"raffleKey"`
	Requester   string                `json:"requester"`
	Status      string                `json:"status"`
	Error       string                `json:"error,omitempty"`
	Result      *VerificationResponse `json:"result,omitempty"`
	SubmittedAt time.Time             `json:"submittedAt"`
	StartedAt   *time.Time            `json:"startedAt,omitempty"`
	FinishedAt  *time.Time            `json:"finishedAt,omitempty"`
}

func FromSubmission(res *commands.SubmissionResult) *SubmitDrawResponse {
	return &SubmitDrawResponse{
		TicketID:   res.Ack.TicketID,
		Position:   res.Ack.Position,
		RaffleKey:  res.RaffleKey,
		TotalSlots: res.TotalSlots,
	}
}

func FromTicket(t queue.Ticket) *TicketResponse {
	resp := &TicketResponse{
		ID:          t.ID,
		RaffleKey:   t.RaffleKey,
		Requester:   t.Requester,
		Status:      string(t.Status),
		SubmittedAt: t.SubmittedAt,
		StartedAt:   optionalTime(t.StartedAt),
		FinishedAt:  optionalTime(t.FinishedAt),
	}
	if t.Err != nil {
		resp.Error = t.Err.Error()
	}
	if t.Record != nil {
		resp.Result = FromVerificationRecord(t.Record)
	}
	return resp
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
