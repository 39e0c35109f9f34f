package account

import (
	"errors"
	"strings"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds for debit")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrEmptyAccountID    = errors.New("account id cannot be empty")
	ErrEmptyAccountName  = errors.New("account name cannot be empty")
	ErrNegativeBalance   = errors.New("balance cannot be negative")
)

// Account is a named balance held in a single currency
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Currency currency.Code   `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Type     string          `json:"type"`
	Flag     string          `json:"flag"`
}

// NewAccount creates a validated account
func NewAccount(id, name string, code currency.Code, balance decimal.Decimal, accountType, flag string) (Account, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Account{}, ErrEmptyAccountID
	}
	if name == "" {
		return Account{}, ErrEmptyAccountName
	}
	if !code.Valid() {
		return Account{}, currency.ErrInvalidCode
	}
	if balance.IsNegative() {
		return Account{}, ErrNegativeBalance
	}

	return Account{
		ID:       id,
		Name:     name,
		Currency: code,
		Balance:  balance,
		Type:     strings.TrimSpace(accountType),
		Flag:     strings.TrimSpace(flag),
	}, nil
}

// Credit returns a copy of the account with amount added to the balance
func (a Account) Credit(amount decimal.Decimal) (Account, error) {
	if !amount.IsPositive() {
		return a, ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	return a, nil
}

// Debit returns a copy of the account with amount taken from the balance
func (a Account) Debit(amount decimal.Decimal) (Account, error) {
	if !amount.IsPositive() {
		return a, ErrInvalidAmount
	}

	if !a.CanDebit(amount) {
		return a, ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return a, nil
}

// CanDebit checks if the balance covers amount
func (a Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
