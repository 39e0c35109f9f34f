package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransferRequest describes a movement of Amount (source currency) from one
// account to another
type TransferRequest struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Note          string
}

// ScheduleRequest is a TransferRequest with a target date
type ScheduleRequest struct {
	TransferRequest
	ScheduledDate time.Time
}

// Quote is the outcome of a successful validation: the two accounts and
// what the destination would receive.
type Quote struct {
	From            account.Account
	To              account.Account
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
	Rate            *decimal.Decimal
}

// Type tells whether the quoted transfer converts currency.
func (q Quote) Type() shared.TransferType {
	if q.From.Currency != q.To.Currency {
		return shared.TransferTypeFXTransfer
	}
	return shared.TransferTypeTransfer
}

// Mutator validates and applies transfers. Time and ids come from the
// injected clock and generator so results are reproducible in tests.
type Mutator struct {
	clock Clock
	ids   IDGenerator
}

// NewMutator creates a Mutator
func NewMutator(clock Clock, ids IDGenerator) *Mutator {
	return &Mutator{
		clock: clock,
		ids:   ids,
	}
}

// Validate runs the transfer checks in order and reports the first failure.
func Validate(accounts account.Accounts, req TransferRequest, rates currency.RateTable) (Quote, error) {
	from, ok := accounts.Find(req.FromAccountID)
	if !ok {
		return Quote{}, ErrMissingSource
	}
	to, ok := accounts.Find(req.ToAccountID)
	if !ok {
		return Quote{}, ErrMissingDestination
	}
	if from.ID == to.ID {
		return Quote{}, ErrSameAccount
	}
	if !req.Amount.IsPositive() {
		return Quote{}, ErrInvalidAmount
	}
	if !from.CanDebit(req.Amount) {
		return Quote{}, ErrInsufficientFunds
	}

	converted, err := currency.Convert(req.Amount, from.Currency, to.Currency, rates)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %w", ErrConversionUnavailable, err)
	}

	q := Quote{
		From:            from,
		To:              to,
		Amount:          req.Amount,
		ConvertedAmount: converted,
	}
	if from.Currency != to.Currency {
		rate := rates[currency.NewPair(from.Currency, to.Currency)]
		q.Rate = &rate
	}
	return q, nil
}

// ExecuteTransfer validates req and, only if every check passes, debits the
// source by Amount and credits the destination by the converted amount.
// The returned collection is new; accounts is not modified.
func (m *Mutator) ExecuteTransfer(accounts account.Accounts, req TransferRequest, rates currency.RateTable) (account.Accounts, Transaction, error) {
	q, err := Validate(accounts, req, rates)
	if err != nil {
		return nil, Transaction{}, err
	}

	debited, err := q.From.Debit(q.Amount)
	if err != nil {
		return nil, Transaction{}, err
	}
	credited, err := q.To.Credit(q.ConvertedAmount)
	if err != nil {
		return nil, Transaction{}, err
	}

	txn := Transaction{
		ID:              m.ids.NewID(TransactionIDPrefix),
		Timestamp:       m.clock.Now(),
		FromAccountID:   q.From.ID,
		ToAccountID:     q.To.ID,
		FromAccountName: q.From.Name,
		ToAccountName:   q.To.Name,
		Amount:          q.Amount,
		ConvertedAmount: q.ConvertedAmount,
		FromCurrency:    q.From.Currency,
		ToCurrency:      q.To.Currency,
		FXRate:          q.Rate,
		Note:            strings.TrimSpace(req.Note),
		Type:            q.Type(),
	}

	return accounts.Replace(debited, credited), txn, nil
}

// ScheduleTransfer validates req like ExecuteTransfer, then checks the date.
// Balances are left alone.
func (m *Mutator) ScheduleTransfer(accounts account.Accounts, req ScheduleRequest, rates currency.RateTable) (ScheduledTransfer, error) {
	q, err := Validate(accounts, req.TransferRequest, rates)
	if err != nil {
		return ScheduledTransfer{}, err
	}

	if req.ScheduledDate.IsZero() {
		return ScheduledTransfer{}, ErrMissingScheduleDate
	}
	now := m.clock.Now()
	if dateOf(req.ScheduledDate).Before(dateOf(now)) {
		return ScheduledTransfer{}, ErrScheduleDateInPast
	}

	return ScheduledTransfer{
		ID:              m.ids.NewID(ScheduledIDPrefix),
		CreatedAt:       now,
		ScheduledDate:   dateOf(req.ScheduledDate),
		FromAccountID:   q.From.ID,
		ToAccountID:     q.To.ID,
		FromAccountName: q.From.Name,
		ToAccountName:   q.To.Name,
		Amount:          q.Amount,
		ConvertedAmount: q.ConvertedAmount,
		FromCurrency:    q.From.Currency,
		ToCurrency:      q.To.Currency,
		FXRate:          q.Rate,
		Note:            strings.TrimSpace(req.Note),
		Type:            q.Type(),
		Status:          shared.ScheduleStatusScheduled,
	}, nil
}

// CancelScheduledTransfer returns list without the entry whose id matches.
// An unknown id leaves the list as it was.
func CancelScheduledTransfer(list []ScheduledTransfer, id string) []ScheduledTransfer {
	out := make([]ScheduledTransfer, 0, len(list))
	for _, s := range list {
		if s.ID == id {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ParseScheduleDate parses a YYYY-MM-DD date. Blank input yields the zero
// time, which ScheduleTransfer reports as a missing date.
func ParseScheduleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}

// ParseAmount parses user input into an amount. Anything that is not a
// positive number is ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
