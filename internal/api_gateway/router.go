package api_gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/handler"
	"github.com/shannicec/moneymorph/internal/api_gateway/middleware"
)

// handlers groups every HTTP handler the router mounts
type handlers struct {
	accounts     *handler.AccountHandler
	rates        *handler.RateHandler
	transactions *handler.TransactionHandler
	schedules    *handler.ScheduleHandler
	analytics    *handler.AnalyticsHandler
}

// setupRouter configures API routes and middleware for the application
func setupRouter(logger *slog.Logger, r *gin.Engine, h handlers) {
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", h.accounts.List)
			accounts.GET("/export", h.accounts.Export)
			accounts.POST("/import", h.accounts.Import)
			accounts.GET("/:id", h.accounts.GetByID)
		}

		rates := v1.Group("/rates")
		{
			rates.GET("", h.rates.List)
			rates.PUT("", h.rates.Update)
		}
		v1.GET("/convert", h.rates.Convert)

		v1.POST("/transfers", h.transactions.Transfer)
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", h.transactions.List)
			transactions.GET("/export", h.transactions.Export)
			transactions.GET("/:id", h.transactions.GetByID)
		}

		scheduled := v1.Group("/scheduled-transfers")
		{
			scheduled.POST("", h.schedules.Create)
			scheduled.GET("", h.schedules.List)
			scheduled.DELETE("/:id", h.schedules.Cancel)
		}

		v1.GET("/analytics", h.analytics.Summary)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
