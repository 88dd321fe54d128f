package errs

import "errors"

// Domain-specific sentinel errors shared by the draw pipeline and the HTTP layer
var (
	// Draw outcome errors
	ErrDuplicateDraw            = errors.New("raffle already drawn")
	ErrInsufficientParticipants = errors.New("insufficient participants")
	ErrInvalidRaffleRequest     = errors.New("invalid raffle request")

	// Collaborator errors
	ErrContentUnavailable = errors.New("content unavailable")
	ErrQuotaExhausted     = errors.New("all api keys exhausted")
	ErrProviderError      = errors.New("randomness provider error")
	ErrTransientFailure   = errors.New("transient failure")

	// Persistence errors
	ErrPersistenceFailure   = errors.New("persistence failure")
	ErrVerificationNotFound = errors.New("verification record not found")

	// Queue errors
	ErrQueueClosed    = errors.New("request queue closed")
	ErrTicketNotFound = errors.New("ticket not found")
)
