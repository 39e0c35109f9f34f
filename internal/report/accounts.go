package report

import (
	"fmt"

	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/platform/tabular"
	"github.com/shopspring/decimal"
)

// AccountsFileBase is the base name of account exports
const AccountsFileBase = "money-morph-accounts"

// AccountHeaders is the column order of an account export or import
var AccountHeaders = []string{"Account ID", "Account Name", "Currency", "Balance", "Type", "Flag"}

// AccountRecords flattens accounts for export.
func AccountRecords(accounts account.Accounts) []tabular.Record {
	records := make([]tabular.Record, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, tabular.Record{
			"Account ID":   a.ID,
			"Account Name": a.Name,
			"Currency":     string(a.Currency),
			"Balance":      a.Balance.String(),
			"Type":         a.Type,
			"Flag":         a.Flag,
		})
	}
	return records
}

// ExportAccounts renders accounts as CSV.
func ExportAccounts(accounts account.Accounts) ([]byte, error) {
	return tabular.Export(AccountHeaders, AccountRecords(accounts))
}

// ParseAccounts imports an account set from CSV text. The id, name,
// currency and balance columns are required; a row that does not make a
// valid account fails the whole import.
func ParseAccounts(text string) (account.Accounts, error) {
	table, err := tabular.Import(text)
	if err != nil {
		return nil, err
	}
	for _, h := range AccountHeaders[:4] {
		if !contains(table.Headers, h) {
			return nil, fmt.Errorf("%w: missing column %q", tabular.ErrMalformedImport, h)
		}
	}
	if len(table.Records) == 0 {
		return nil, fmt.Errorf("%w: no complete rows", tabular.ErrMalformedImport)
	}

	accounts := make(account.Accounts, 0, len(table.Records))
	for i, rec := range table.Records {
		a, err := accountFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", tabular.ErrMalformedImport, i+1, err)
		}
		accounts = append(accounts, a)
	}
	if err := account.ValidateSet(accounts); err != nil {
		return nil, fmt.Errorf("%w: %w", tabular.ErrMalformedImport, err)
	}
	return accounts, nil
}

func accountFromRecord(rec tabular.Record) (account.Account, error) {
	code, err := currency.ParseCode(rec["Currency"])
	if err != nil {
		return account.Account{}, err
	}
	balance, err := decimal.NewFromString(rec["Balance"])
	if err != nil {
		return account.Account{}, fmt.Errorf("invalid balance %q", rec["Balance"])
	}
	return account.NewAccount(rec["Account ID"], rec["Account Name"], code, balance, rec["Type"], rec["Flag"])
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
