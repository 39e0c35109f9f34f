package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
)

// ScheduleHandler handles HTTP requests for scheduled transfers
type ScheduleHandler struct {
	scheduleService service.ScheduleService
	logger          *slog.Logger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(logger *slog.Logger, scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Create records a transfer for a future date
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req ScheduleTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := ledger.ParseScheduleDate(req.ScheduledDate)
	if err != nil {
		RespondBadRequest(c, "scheduled_date must be formatted YYYY-MM-DD")
		return
	}

	scheduled, err := h.scheduleService.ScheduleTransfer(c.Request.Context(), ledger.ScheduleRequest{
		TransferRequest: req.toLedger(),
		ScheduledDate:   date,
	})
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondCreated(c, scheduled)
}

// List returns scheduled transfers in the order they were created
func (h *ScheduleHandler) List(c *gin.Context) {
	scheduled, err := h.scheduleService.ListScheduled(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, scheduled)
}

// Cancel removes a scheduled transfer. Unknown ids also get 204.
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	if _, err := h.scheduleService.CancelScheduled(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondNoContent(c)
}
