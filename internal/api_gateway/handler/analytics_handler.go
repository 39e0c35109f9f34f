package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/platform/display"
)

// AnalyticsHandler serves the portfolio summary
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *slog.Logger
}

func NewAnalyticsHandler(logger *slog.Logger, analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, AnalyticsResponse{
		Summary:           summary,
		DisplayTotalValue: display.FormatMoney(summary.TotalValue, summary.ValueIn),
	})
}
