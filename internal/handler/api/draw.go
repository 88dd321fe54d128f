package api

import (
	"net/http"

	reqdto "raffle-draw/internal/handler/dto/request"
	resdto "raffle-draw/internal/handler/dto/response"
	"raffle-draw/internal/handler/httperr"
	"raffle-draw/internal/handler/middleware"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/queue"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("identity missing from request context")

type DrawHandler struct {
	cmds    commands.SubmissionCommands
	tickets queue.Submitter
}

func NewDrawHandler(cmds commands.SubmissionCommands, tickets queue.Submitter) *DrawHandler {
	return &DrawHandler{cmds: cmds, tickets: tickets}
}

// @Summary Submit draw
// @Description Queue a draw for a raffle post. Slots are read from the post title when omitted.
// @Tags draws
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDrawRequest true "Draw request"
// @Success 202 {object} resdto.SubmitDrawResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /draws [post]
func (h *DrawHandler) Submit(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), req, identity)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromSubmission(result))
}

// @Summary Get ticket
// @Description Report the state of a queued draw and its outcome once finished
// @Tags draws
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /draws/tickets/{id} [get]
func (h *DrawHandler) GetTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	t, err := h.tickets.Ticket(id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicket(t))
}
