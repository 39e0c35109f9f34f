package service

import (
	"context"

	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/analytics"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AccountService defines the interface for account operations
type AccountService interface {
	// ListAccounts returns every account in session order
	ListAccounts(ctx context.Context) (account.Accounts, error)

	// GetAccount returns ErrAccountNotFound if the account doesn't exist
	GetAccount(ctx context.Context, id string) (account.Account, error)

	// ExportAccounts renders the accounts as CSV
	ExportAccounts(ctx context.Context) ([]byte, error)

	// ImportAccounts replaces the account set with the accounts parsed from csv
	// Returns an error wrapping tabular.ErrMalformedImport on bad input
	ImportAccounts(ctx context.Context, csv string) (account.Accounts, error)
}

// RateService defines the interface for rate table operations
type RateService interface {
	GetRates(ctx context.Context) (currency.RateTable, error)

	// UpdateRates merges raw edits; invalid pairs or values are ignored
	UpdateRates(ctx context.Context, edits map[string]string) (currency.RateTable, error)

	// Convert previews a conversion with the current table
	Convert(ctx context.Context, amount decimal.Decimal, from, to currency.Code) (Conversion, error)
}

// TransactionService defines the interface for transfers and the transaction log
type TransactionService interface {
	// Transfer validates and settles req. Validation failures leave state untouched
	Transfer(ctx context.Context, req ledger.TransferRequest) (ledger.Transaction, error)

	// ListTransactions returns a newest-first page of the filtered log and the filtered total
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]ledger.Transaction, int, error)

	// GetTransaction returns ErrTransactionNotFound if the id is unknown
	GetTransaction(ctx context.Context, id string) (ledger.Transaction, error)

	// ExportTransactions renders the filtered log, ignoring paging. It returns
	// tabular.ErrEmptyExport when nothing matches
	ExportTransactions(ctx context.Context, filter TransactionFilter) ([]byte, error)
}

// ScheduleService defines the interface for scheduled transfers
type ScheduleService interface {
	ScheduleTransfer(ctx context.Context, req ledger.ScheduleRequest) (ledger.ScheduledTransfer, error)
	ListScheduled(ctx context.Context) ([]ledger.ScheduledTransfer, error)

	// CancelScheduled reports whether a transfer was removed; unknown ids are not an error
	CancelScheduled(ctx context.Context, id string) (bool, error)
}

// AnalyticsService defines the interface for portfolio analytics
type AnalyticsService interface {
	Summary(ctx context.Context) (analytics.Summary, error)
}

// Conversion is a converter preview
type Conversion struct {
	Amount          decimal.Decimal  `json:"amount"`
	From            currency.Code    `json:"from"`
	To              currency.Code    `json:"to"`
	ConvertedAmount decimal.Decimal  `json:"converted_amount"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
}

// TransactionFilter selects a page of the transaction log
type TransactionFilter struct {
	Query    string
	Type     shared.TransferType
	Currency currency.Code
	Page     int
	PerPage  int
}

func (f TransactionFilter) criteria() ledger.Criteria {
	return ledger.Criteria{Query: f.Query, Type: f.Type, Currency: f.Currency}
}
