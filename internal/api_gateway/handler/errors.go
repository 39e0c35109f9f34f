package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/tabular"
)

// respondDomainError maps service errors onto the response envelope.
// Business rule failures are 422 with their failure code; anything
// unrecognised is logged and hidden behind a 500.
func respondDomainError(c *gin.Context, logger *slog.Logger, err error) {
	var accNotFound account.ErrAccountNotFound
	var txnNotFound ledger.ErrTransactionNotFound

	switch {
	case errors.As(err, &accNotFound):
		RespondNotFound(c, "Account not found")
	case errors.As(err, &txnNotFound):
		RespondNotFound(c, "Transaction not found")
	case errors.Is(err, tabular.ErrEmptyExport):
		RespondUnprocessable(c, shared.FailureReasonEmptyExport, err.Error())
	case errors.Is(err, tabular.ErrMalformedImport):
		RespondUnprocessable(c, shared.FailureReasonMalformedImport, err.Error())
	default:
		reason := ledger.ReasonOf(err)
		if reason == shared.FailureReasonUnknownError {
			logger.Error("Request failed", "path", c.FullPath(), "error", err)
			RespondInternalError(c)
			return
		}
		RespondUnprocessable(c, reason, err.Error())
	}
}
