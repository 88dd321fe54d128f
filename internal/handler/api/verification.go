package api

import (
	"net/http"

	reqdto "raffle-draw/internal/handler/dto/request"
	resdto "raffle-draw/internal/handler/dto/response"
	"raffle-draw/internal/handler/httperr"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VerificationHandler struct {
	q     queries.VerificationQueries
	clock clock.Clock
}

func NewVerificationHandler(q queries.VerificationQueries, clk clock.Clock) *VerificationHandler {
	return &VerificationHandler{q: q, clock: clk}
}

// @Summary Get verification
// @Description Get the stored verification record of a draw, including the payload to paste into the provider's verify form
// @Tags verifications
// @Produce json
// @Param id path string true "Draw ID"
// @Success 200 {object} resdto.VerificationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /verifications/{id} [get]
func (h *VerificationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	rec, err := h.q.GetByDrawID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerificationRecord(rec))
}

// @Summary Roll history
// @Description Count how often each number was drawn on a UTC day
// @Tags verifications
// @Produce json
// @Param date query string false "Day in YYYY-MM-DD, defaults to today"
// @Success 200 {object} resdto.RollHistoryResponse
// @Failure 400 {object} map[string]string
// @Router /rolls/history [get]
func (h *VerificationHandler) RollHistory(c *gin.Context) {
	var query reqdto.RollHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	history, err := h.q.RollHistory(c.Request.Context(), query.Day(h.clock.Now()))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRollHistory(history))
}
