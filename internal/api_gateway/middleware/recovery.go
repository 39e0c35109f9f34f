package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// InternalErrorCode is the error code of every 500 the API sends
const InternalErrorCode = "INTERNAL_SERVER_ERROR"

// Recovery turns a panicking handler into a 500 in the API's error envelope.
// Balances are only committed through the session store, so a panic never
// leaves a half-applied transfer behind.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			id := GetCorrelationID(c)
			logger.Error("Panic recovered",
				slog.String("error", fmt.Sprint(r)),
				slog.String("route", c.FullPath()),
				slog.String("method", c.Request.Method),
				slog.String("correlation_id", id),
				slog.String("stack", string(debug.Stack())),
			)

			body := gin.H{"error": gin.H{
				"code":    InternalErrorCode,
				"message": "An internal server error occurred",
			}}
			if id != "" {
				body["correlation_id"] = id
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()

		c.Next()
	}
}
