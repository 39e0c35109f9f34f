// Package analytics computes portfolio figures from accounts, the
// transaction log and the rate table.
package analytics

import (
	"sort"

	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// NoActivity names the most active account when there are no accounts
const NoActivity = "No activity"

// AccountActivity counts the transfers an account took part in
type AccountActivity struct {
	AccountID   string `json:"account_id,omitempty"`
	AccountName string `json:"account_name"`
	Transfers   int    `json:"transfers"`
}

// Summary is the analytics view of a session
type Summary struct {
	TransactionCount  int                               `json:"transaction_count"`
	TotalMoved        map[currency.Code]decimal.Decimal `json:"total_moved"`
	FXTransferCount   int                               `json:"fx_transfer_count"`
	FXTransferPercent decimal.Decimal                   `json:"fx_transfer_percent"`
	MostActive        AccountActivity                   `json:"most_active"`
	AccountCount      int                               `json:"account_count"`
	Balances          map[currency.Code]decimal.Decimal `json:"balances"`
	ValueIn           currency.Code                     `json:"value_in"`
	TotalValue        decimal.Decimal                   `json:"total_value"`
	Unpriced          []currency.Code                   `json:"unpriced,omitempty"`
}

// Summarize builds the summary, valuing every balance in base. A currency
// with no rate to base is left out of TotalValue and listed in Unpriced.
func Summarize(accounts account.Accounts, txns []ledger.Transaction, rates currency.RateTable, base currency.Code) Summary {
	s := Summary{
		TransactionCount:  len(txns),
		TotalMoved:        make(map[currency.Code]decimal.Decimal),
		FXTransferPercent: decimal.Zero,
		AccountCount:      len(accounts),
		Balances:          make(map[currency.Code]decimal.Decimal),
		ValueIn:           base,
		TotalValue:        decimal.Zero,
	}

	activity := make(map[string]int, len(accounts))
	for _, txn := range txns {
		s.TotalMoved[txn.FromCurrency] = s.TotalMoved[txn.FromCurrency].Add(txn.Amount)
		if txn.Type == shared.TransferTypeFXTransfer {
			s.FXTransferCount++
		}
		activity[txn.FromAccountID]++
		activity[txn.ToAccountID]++
	}
	if len(txns) > 0 {
		s.FXTransferPercent = decimal.NewFromInt(int64(s.FXTransferCount)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(len(txns)))).
			Round(1)
	}

	// On a tie the later account wins.
	s.MostActive = AccountActivity{AccountName: NoActivity}
	for i, a := range accounts {
		if i == 0 || activity[a.ID] >= s.MostActive.Transfers {
			s.MostActive = AccountActivity{AccountID: a.ID, AccountName: a.Name, Transfers: activity[a.ID]}
		}
	}

	for _, a := range accounts {
		s.Balances[a.Currency] = s.Balances[a.Currency].Add(a.Balance)
	}

	codes := make([]currency.Code, 0, len(s.Balances))
	for code := range s.Balances {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	for _, code := range codes {
		value, err := currency.Convert(s.Balances[code], code, base, rates)
		if err != nil {
			s.Unpriced = append(s.Unpriced, code)
			continue
		}
		s.TotalValue = s.TotalValue.Add(value)
	}
	return s
}
