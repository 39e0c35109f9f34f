package handler

import (
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/platform/tabular"
	"github.com/shannicec/moneymorph/internal/report"
)

// maxImportBytes caps the size of an uploaded account CSV
const maxImportBytes = 1 << 20

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
	now            func() time.Time
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
		now:            time.Now,
	}
}

// List returns every account with its formatted balance
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, mapAccountsToResponse(accounts))
}

// GetByID retrieves an account by its ID, returning 404 if not found
func (h *AccountHandler) GetByID(c *gin.Context) {
	acc, err := h.accountService.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, mapAccountToResponse(acc))
}

// Export downloads the accounts as CSV
func (h *AccountHandler) Export(c *gin.Context) {
	body, err := h.accountService.ExportAccounts(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondCSV(c, tabular.FileName(report.AccountsFileBase, h.now()), body)
}

// Import replaces the account set with the CSV request body
func (h *AccountHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		RespondBadRequest(c, "Failed to read request body")
		return
	}

	accounts, err := h.accountService.ImportAccounts(c.Request.Context(), string(raw))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, mapAccountsToResponse(accounts))
}
