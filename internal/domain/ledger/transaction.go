package ledger

import (
	"time"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Transaction is the immutable record of a settled transfer. Amount is in
// the source currency, ConvertedAmount in the destination currency.
type Transaction struct {
	ID              string              `json:"id"`
	Timestamp       time.Time           `json:"timestamp"`
	FromAccountID   string              `json:"from_account_id"`
	ToAccountID     string              `json:"to_account_id"`
	FromAccountName string              `json:"from_account_name"`
	ToAccountName   string              `json:"to_account_name"`
	Amount          decimal.Decimal     `json:"amount"`
	ConvertedAmount decimal.Decimal     `json:"converted_amount"`
	FromCurrency    currency.Code       `json:"from_currency"`
	ToCurrency      currency.Code       `json:"to_currency"`
	FXRate          *decimal.Decimal    `json:"fx_rate,omitempty"` // nil for same-currency transfers
	Note            string              `json:"note,omitempty"`
	Type            shared.TransferType `json:"type"`
}

// ScheduledTransfer is a transfer recorded for a future date. Nothing
// executes it; it only reserves the intent.
type ScheduledTransfer struct {
	ID              string                `json:"id"`
	CreatedAt       time.Time             `json:"created_at"`
	ScheduledDate   time.Time             `json:"scheduled_date"`
	FromAccountID   string                `json:"from_account_id"`
	ToAccountID     string                `json:"to_account_id"`
	FromAccountName string                `json:"from_account_name"`
	ToAccountName   string                `json:"to_account_name"`
	Amount          decimal.Decimal       `json:"amount"`
	ConvertedAmount decimal.Decimal       `json:"converted_amount"`
	FromCurrency    currency.Code         `json:"from_currency"`
	ToCurrency      currency.Code         `json:"to_currency"`
	FXRate          *decimal.Decimal      `json:"fx_rate,omitempty"`
	Note            string                `json:"note,omitempty"`
	Type            shared.TransferType   `json:"type"`
	Status          shared.ScheduleStatus `json:"status"`
}

// DueOn reports whether the transfer's date is on or before day.
func (s ScheduledTransfer) DueOn(day time.Time) bool {
	return !dateOf(s.ScheduledDate).After(dateOf(day))
}

// dateOf drops the clock part of t, keeping the calendar day as seen in t's
// own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
