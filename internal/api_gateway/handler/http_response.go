package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/middleware"
	"github.com/shannicec/moneymorph/internal/domain/shared"
)

// Response is the JSON envelope of every API reply except CSV downloads
type Response struct {
	Data          any        `json:"data,omitempty"`
	Error         *ErrorInfo `json:"error,omitempty"`
	CorrelationID string     `json:"correlation_id,omitempty"`
	Meta          *Page      `json:"meta,omitempty"`
}

// ErrorInfo carries a machine-readable code, a FailureReason for domain
// rejections, and a message for people
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Page describes one page of a filtered list
type Page struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

func newPage(page, perPage, totalItems int) *Page {
	totalPages := 0
	if perPage > 0 {
		totalPages = (totalItems + perPage - 1) / perPage
	}
	return &Page{Page: page, PerPage: perPage, TotalPages: totalPages, TotalItems: totalItems}
}

func respond(c *gin.Context, status int, r Response) {
	r.CorrelationID = middleware.GetCorrelationID(c)
	c.JSON(status, r)
}

func respondError(c *gin.Context, status int, code, message string) {
	respond(c, status, Response{Error: &ErrorInfo{Code: code, Message: message}})
}

// RespondOK sends 200 with data
func RespondOK(c *gin.Context, data any) {
	respond(c, http.StatusOK, Response{Data: data})
}

// RespondCreated sends 201 with the created record
func RespondCreated(c *gin.Context, data any) {
	respond(c, http.StatusCreated, Response{Data: data})
}

// RespondWithPaginatedData sends 200 with one page of a list
func RespondWithPaginatedData(c *gin.Context, data any, page, perPage, totalItems int) {
	respond(c, http.StatusOK, Response{Data: data, Meta: newPage(page, perPage, totalItems)})
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondBadRequest is for bodies and parameters that cannot be read at all
func RespondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	respondError(c, http.StatusNotFound, "NOT_FOUND", message)
}

// RespondUnprocessable reports a well-formed request the domain rejected
func RespondUnprocessable(c *gin.Context, reason shared.FailureReason, message string) {
	respondError(c, http.StatusUnprocessableEntity, string(reason), message)
}

func RespondInternalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, middleware.InternalErrorCode, "An internal server error occurred")
}

// RespondCSV sends body as a CSV attachment named filename
func RespondCSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
