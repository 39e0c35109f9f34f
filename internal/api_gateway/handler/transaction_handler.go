package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/platform/tabular"
	"github.com/shannicec/moneymorph/internal/report"
)

// TransactionHandler handles HTTP requests for transfers and the transaction log
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
	now                func() time.Time
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
		now:                time.Now,
	}
}

// Transfer executes an instant transfer
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.transactionService.Transfer(c.Request.Context(), req.toLedger())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondCreated(c, txn)
}

// List returns a newest-first page of the log, optionally filtered
func (h *TransactionHandler) List(c *gin.Context) {
	var params TransactionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid query: "+err.Error())
		return
	}

	filter := params.filter()
	filter.Page, filter.PerPage = params.Page, params.PerPage
	txns, total, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondWithPaginatedData(c, txns, params.Page, params.PerPage, total)
}

// GetByID retrieves a transaction by its ID
func (h *TransactionHandler) GetByID(c *gin.Context) {
	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondOK(c, txn)
}

// Export downloads the log as CSV, honouring the same search as List
func (h *TransactionHandler) Export(c *gin.Context) {
	var params TransactionSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondBadRequest(c, "Invalid query: "+err.Error())
		return
	}

	body, err := h.transactionService.ExportTransactions(c.Request.Context(), params.filter())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	RespondCSV(c, tabular.FileName(report.TransactionsFileBase, h.now()), body)
}

func (r TransferRequest) toLedger() ledger.TransferRequest {
	return ledger.TransferRequest{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount.Decimal(),
		Note:          r.Note,
	}
}
