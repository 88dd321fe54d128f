package api

import (
	"context"
	"net/http"

	"raffle-draw/internal/handler/httperr"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type statusRule struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching marker wins.
var statusRules = []statusRule{
	{errs.ErrDuplicateDraw, http.StatusConflict, "Raffle already drawn"},
	{commands.ErrOverrideForbidden, http.StatusForbidden, "Override requires admin role"},
	{errs.ErrInsufficientParticipants, http.StatusUnprocessableEntity, "Insufficient participants"},
	{errs.ErrInvalidRaffleRequest, http.StatusUnprocessableEntity, "Invalid raffle request"},
	{errs.ErrContentUnavailable, http.StatusBadGateway, "Raffle post unavailable"},
	{errs.ErrQuotaExhausted, http.StatusServiceUnavailable, "Randomness quota exhausted"},
	{errs.ErrProviderError, http.StatusBadGateway, "Randomness provider error"},
	{errs.ErrQueueClosed, http.StatusServiceUnavailable, "Draw queue closed"},
	{errs.ErrVerificationNotFound, http.StatusNotFound, "Verification not found"},
	{errs.ErrTicketNotFound, http.StatusNotFound, "Ticket not found"},
	{commands.ErrLedgerEntryNotFound, http.StatusNotFound, "Ledger entry not found"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "Request timed out"},
}

func statusFor(err error) (int, string) {
	for _, r := range statusRules {
		if errs.Is(err, r.target) {
			return r.status, r.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func abortWithDomainError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	var detail any
	if status == http.StatusUnprocessableEntity {
		detail = gin.H{"reason": err.Error()}
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}
