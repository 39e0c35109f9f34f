package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shopspring/decimal"
)

// RateHandler handles HTTP requests for the rate table and converter
type RateHandler struct {
	rateService service.RateService
	logger      *slog.Logger
}

// NewRateHandler creates a new rate handler
func NewRateHandler(logger *slog.Logger, rateService service.RateService) *RateHandler {
	return &RateHandler{
		rateService: rateService,
		logger:      logger,
	}
}

// List returns the rate table sorted by pair
func (h *RateHandler) List(c *gin.Context) {
	rates, err := h.rateService.GetRates(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, mapRatesToResponse(rates))
}

// Update applies rate edits and returns the full table
func (h *RateHandler) Update(c *gin.Context) {
	var req UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rates, err := h.rateService.UpdateRates(c.Request.Context(), req.edits())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, mapRatesToResponse(rates))
}

// Convert previews a conversion without touching any account
func (h *RateHandler) Convert(c *gin.Context) {
	var q ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondBadRequest(c, "Invalid query: "+err.Error())
		return
	}

	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		RespondBadRequest(c, "amount must be a number")
		return
	}
	// the binding validator already accepted both codes
	from, _ := currency.ParseCode(q.From)
	to, _ := currency.ParseCode(q.To)

	conv, err := h.rateService.Convert(c.Request.Context(), amount, from, to)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, conv)
}
