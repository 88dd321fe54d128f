package api

import (
	"log/slog"
	"net/http"

	resdto "raffle-draw/internal/handler/dto/response"
	"raffle-draw/internal/handler/middleware"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/keyrotation"
	"raffle-draw/internal/usecase/queue"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	guard         commands.DuplicateGuard
	verifications commands.VerificationCommands
}

func NewAdminHandler(guard commands.DuplicateGuard, verifications commands.VerificationCommands) *AdminHandler {
	return &AdminHandler{guard: guard, verifications: verifications}
}

// @Summary Purge verifications
// @Description Delete every stored verification record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PurgeResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /verifications [delete]
func (h *AdminHandler) PurgeVerifications(c *gin.Context) {
	n, err := h.verifications.PurgeAll(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	identity, _ := middleware.GetIdentity(c)
	slog.Warn("verification records purged by admin", "admin", identity.ID, "count", n)
	c.JSON(http.StatusOK, resdto.PurgeResponse{Purged: n})
}

// @Summary Abort in-progress draw
// @Description Release the in-progress marker of a raffle so it can be drawn again
// @Tags admin
// @Security BearerAuth
// @Param raffleKey path string true "Raffle key"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /ledger/{raffleKey}/in-progress [delete]
func (h *AdminHandler) AbortDraw(c *gin.Context) {
	key := c.Param("raffleKey")
	if err := h.guard.AbortDraw(c.Request.Context(), key); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get ledger entry
// @Description Show the duplicate-draw ledger entry of a raffle
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param raffleKey path string true "Raffle key"
// @Success 200 {object} resdto.LedgerEntryResponse
// @Failure 404 {object} map[string]string
// @Router /ledger/{raffleKey} [get]
func (h *AdminHandler) GetLedgerEntry(c *gin.Context) {
	entry, err := h.guard.Entry(c.Request.Context(), c.Param("raffleKey"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerEntry(entry))
}

type StatusHandler struct {
	keys  keyrotation.StatusReporter
	queue queue.Submitter
}

func NewStatusHandler(keys keyrotation.StatusReporter, q queue.Submitter) *StatusHandler {
	return &StatusHandler{keys: keys, queue: q}
}

// @Summary API key status
// @Description Per-key request usage against the daily quota, and the draw queue depth
// @Tags status
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.KeyStatusResponse
// @Router /keys/status [get]
func (h *StatusHandler) KeyStatus(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromKeyUsage(h.keys.Status(), h.queue.Len()))
}
