package service

import (
	"context"
	"log/slog"

	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/messaging/producers"
	"github.com/shannicec/moneymorph/internal/report"
)

// TransactionServiceImpl implements the TransactionService interface
type TransactionServiceImpl struct {
	repo    ledger.Repository
	mutator *ledger.Mutator
	events  eventEmitter
	logger  *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(logger *slog.Logger, repo ledger.Repository, mutator *ledger.Mutator, publisher producers.EventPublisher, clock ledger.Clock) TransactionService {
	return &TransactionServiceImpl{
		repo:    repo,
		mutator: mutator,
		events:  eventEmitter{publisher: publisher, clock: clock, logger: logger},
		logger:  logger,
	}
}

func (s *TransactionServiceImpl) Transfer(ctx context.Context, req ledger.TransferRequest) (ledger.Transaction, error) {
	logger := loggerFor(ctx, s.logger)

	var txn ledger.Transaction
	err := s.repo.Update(ctx, func(state ledger.State) (ledger.State, error) {
		next, t, err := s.mutator.ApplyTransfer(state, req)
		txn = t
		return next, err
	})
	if err != nil {
		logger.Info("Transfer rejected",
			"from_account_id", req.FromAccountID,
			"to_account_id", req.ToAccountID,
			"amount", req.Amount.String(),
			"reason", string(ledger.ReasonOf(err)),
		)
		return ledger.Transaction{}, err
	}

	logger.Info("Transfer executed",
		"transaction_id", txn.ID,
		"type", string(txn.Type),
		"amount", txn.Amount.String(),
		"converted_amount", txn.ConvertedAmount.String(),
	)
	s.events.emit(ctx, shared.EventTypeTransferExecuted, txn.ID, txn)
	return txn, nil
}

func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, filter TransactionFilter) ([]ledger.Transaction, int, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := ledger.Filter(state.Transactions, filter.criteria())
	total := len(matched)

	// Compare page numbers rather than offsets so a huge page cannot overflow.
	perPage := max(filter.PerPage, 1)
	page := max(filter.Page, 1)
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	if page > pages {
		return []ledger.Transaction{}, total, nil
	}
	offset := (page - 1) * perPage
	end := min(offset+perPage, total)
	return matched[offset:end], total, nil
}

func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, id string) (ledger.Transaction, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return ledger.Transaction{}, err
	}
	return state.FindTransaction(id)
}

func (s *TransactionServiceImpl) ExportTransactions(ctx context.Context, filter TransactionFilter) ([]byte, error) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return report.ExportTransactions(ledger.Filter(state.Transactions, filter.criteria()))
}
