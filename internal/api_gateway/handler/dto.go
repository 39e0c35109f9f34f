package handler

import (
	"encoding/json"
	"strings"

	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/analytics"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/display"
	"github.com/shopspring/decimal"
)

// TransferRequest represents a request to move money between accounts.
// Missing accounts and non-positive amounts are reported with their
// failure codes rather than as binding errors.
type TransferRequest struct {
	FromAccountID string     `json:"from_account_id"`
	ToAccountID   string     `json:"to_account_id"`
	Amount        NumberText `json:"amount"`
	Note          string     `json:"note" binding:"max=280"`
}

// ScheduleTransferRequest is a TransferRequest with a YYYY-MM-DD date
type ScheduleTransferRequest struct {
	TransferRequest
	ScheduledDate string `json:"scheduled_date"`
}

// ConvertQuery represents the converter preview parameters
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,currency"`
	To     string `form:"to" binding:"required,currency"`
}

// NumberText accepts any JSON value and keeps its text, unquoting strings.
// Parsing is left to the caller so bad numbers surface as domain failures.
type NumberText string

func (v *NumberText) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = NumberText(s)
		return nil
	}
	*v = NumberText(b)
	return nil
}

// Decimal parses the text, falling back to zero when it is not a number
func (v NumberText) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(string(v)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// UpdateRatesRequest represents rate edits keyed "FROM-TO"
type UpdateRatesRequest struct {
	Rates map[string]NumberText `json:"rates" binding:"required"`
}

func (r UpdateRatesRequest) edits() map[string]string {
	out := make(map[string]string, len(r.Rates))
	for k, v := range r.Rates {
		out[k] = string(v)
	}
	return out
}

// RateResponse is one directional rate
type RateResponse struct {
	Pair string          `json:"pair"`
	From currency.Code   `json:"from"`
	To   currency.Code   `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Currency       currency.Code   `json:"currency"`
	Balance        decimal.Decimal `json:"balance"`
	DisplayBalance string          `json:"display_balance"`
	Type           string          `json:"type,omitempty"`
	Flag           string          `json:"flag,omitempty"`
}

// TransactionSearchParams represents the log search parameters shared by
// listing and export
type TransactionSearchParams struct {
	Query    string `form:"q"`
	Type     string `form:"type" binding:"omitempty,oneof=transfer fx-transfer"`
	Currency string `form:"currency" binding:"omitempty,currency"`
}

// TransactionListParams represents the log search and pagination parameters
type TransactionListParams struct {
	PaginationParams
	TransactionSearchParams
}

func (p TransactionSearchParams) filter() service.TransactionFilter {
	code, _ := currency.ParseCode(p.Currency)
	return service.TransactionFilter{
		Query:    p.Query,
		Type:     shared.TransferType(p.Type),
		Currency: code,
	}
}

// PaginationParams represents pagination parameters for list endpoints
type PaginationParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}

// AnalyticsResponse adds a display string to the summary's portfolio value
type AnalyticsResponse struct {
	analytics.Summary
	DisplayTotalValue string `json:"display_total_value"`
}

func mapAccountToResponse(acc account.Account) AccountResponse {
	return AccountResponse{
		ID:             acc.ID,
		Name:           acc.Name,
		Currency:       acc.Currency,
		Balance:        acc.Balance,
		DisplayBalance: display.FormatMoney(acc.Balance, acc.Currency),
		Type:           acc.Type,
		Flag:           acc.Flag,
	}
}

func mapAccountsToResponse(accounts account.Accounts) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, mapAccountToResponse(acc))
	}
	return out
}

func mapRatesToResponse(rates currency.RateTable) []RateResponse {
	pairs := rates.Pairs()
	out := make([]RateResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, RateResponse{Pair: p.String(), From: p.From, To: p.To, Rate: rates[p]})
	}
	return out
}
