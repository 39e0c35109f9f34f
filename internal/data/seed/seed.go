// Package seed provides the synthetic accounts and rates a new session
// starts from.
package seed

import (
	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// Accounts returns a fresh copy of the reference account set.
func Accounts() account.Accounts {
	return account.Accounts{
		{ID: "acc-001", Name: "Mpesa", Currency: currency.KES, Balance: decimal.NewFromInt(2500000), Type: "Mobile Money", Flag: "🇰🇪"},
		{ID: "acc-002", Name: "Bank", Currency: currency.USD, Balance: decimal.NewFromInt(15000), Type: "Bank Account", Flag: "🇺🇸"},
		{ID: "acc-003", Name: "Flutterwave", Currency: currency.NGN, Balance: decimal.NewFromInt(8500000), Type: "Payment Gateway", Flag: "🇳🇬"},
		{ID: "acc-004", Name: "KCB", Currency: currency.KES, Balance: decimal.NewFromInt(1200000), Type: "Bank Account", Flag: "🇰🇪"},
		{ID: "acc-005", Name: "Wise", Currency: currency.USD, Balance: decimal.NewFromInt(25000), Type: "Digital Wallet", Flag: "🇺🇸"},
		{ID: "acc-006", Name: "GTBank", Currency: currency.NGN, Balance: decimal.NewFromInt(12000000), Type: "Bank Account", Flag: "🇳🇬"},
		{ID: "acc-007", Name: "Safaricom", Currency: currency.KES, Balance: decimal.NewFromInt(800000), Type: "Mobile Money", Flag: "🇰🇪"},
		{ID: "acc-008", Name: "Payoneer", Currency: currency.USD, Balance: decimal.NewFromInt(8500), Type: "Digital Wallet", Flag: "🇺🇸"},
		{ID: "acc-009", Name: "Paystack", Currency: currency.NGN, Balance: decimal.NewFromInt(6200000), Type: "Payment Gateway", Flag: "🇳🇬"},
		{ID: "acc-010", Name: "Buffer", Currency: currency.USD, Balance: decimal.NewFromInt(5000), Type: "Buffer Account", Flag: "🇺🇸"},
	}
}

// Rates returns a fresh copy of the reference rate table. Each direction is
// configured on its own; they are not reciprocals.
func Rates() currency.RateTable {
	return currency.RateTable{
		currency.NewPair(currency.KES, currency.USD): decimal.RequireFromString("0.0072"),
		currency.NewPair(currency.USD, currency.KES): decimal.RequireFromString("139"),
		currency.NewPair(currency.NGN, currency.USD): decimal.RequireFromString("0.0012"),
		currency.NewPair(currency.USD, currency.NGN): decimal.RequireFromString("820"),
		currency.NewPair(currency.KES, currency.NGN): decimal.RequireFromString("5.9"),
		currency.NewPair(currency.NGN, currency.KES): decimal.RequireFromString("0.17"),
	}
}

// State is the starting state of a session.
func State() ledger.State {
	return ledger.State{
		Accounts: Accounts(),
		Rates:    Rates(),
	}
}
