package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/pterm/pterm"
	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/analytics"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/platform/display"
	"github.com/shopspring/decimal"
)

func renderTable(w io.Writer, title string, data pterm.TableData) error {
	fmt.Fprint(w, pterm.DefaultSection.Sprint(title))
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

func renderAccounts(w io.Writer, accounts account.Accounts) error {
	data := pterm.TableData{{"ID", "Name", "Type", "Balance", "Flag"}}
	for _, a := range accounts {
		balance := display.FormatMoney(a.Balance, a.Currency)
		if a.Balance.IsZero() {
			balance = pterm.Gray(balance)
		} else {
			balance = pterm.Green(balance)
		}
		data = append(data, []string{a.ID, a.Name, a.Type, balance, a.Flag})
	}

	if err := renderTable(w, "Accounts", data); err != nil {
		return err
	}
	fmt.Fprint(w, pterm.Info.Sprintf("Total: %d accounts\n", len(accounts)))
	return nil
}

func renderRates(w io.Writer, rates currency.RateTable) error {
	pairs := make([]currency.Pair, 0, len(rates))
	for pair := range rates {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].String() < pairs[j].String() })

	data := pterm.TableData{{"Pair", "Rate"}}
	for _, pair := range pairs {
		data = append(data, []string{pair.String(), display.FormatRate(rates[pair])})
	}
	return renderTable(w, "Exchange Rates", data)
}

func renderTransaction(w io.Writer, txn ledger.Transaction) error {
	data := pterm.TableData{
		{"Field", "Value"},
		{"ID", txn.ID},
		{"Date", txn.Timestamp.Format("2006-01-02 15:04:05")},
		{"From", txn.FromAccountName},
		{"To", txn.ToAccountName},
		{"Sent", display.FormatMoney(txn.Amount, txn.FromCurrency)},
		{"Received", display.FormatMoney(txn.ConvertedAmount, txn.ToCurrency)},
		{"FX Rate", rateOrDash(txn.FXRate)},
		{"Type", string(txn.Type)},
		{"Note", txn.Note},
	}
	return renderTable(w, "Transfer", data)
}

func renderScheduled(w io.Writer, s ledger.ScheduledTransfer) error {
	data := pterm.TableData{
		{"Field", "Value"},
		{"ID", s.ID},
		{"Scheduled For", s.ScheduledDate.Format("2006-01-02")},
		{"From", s.FromAccountName},
		{"To", s.ToAccountName},
		{"Amount", display.FormatMoney(s.Amount, s.FromCurrency)},
		{"Expected", display.FormatMoney(s.ConvertedAmount, s.ToCurrency)},
		{"FX Rate", rateOrDash(s.FXRate)},
		{"Status", string(s.Status)},
		{"Note", s.Note},
	}
	return renderTable(w, "Scheduled Transfer", data)
}

func renderSummary(w io.Writer, s analytics.Summary) error {
	data := pterm.TableData{
		{"Metric", "Value"},
		{"Transactions", fmt.Sprintf("%d", s.TransactionCount)},
		{"FX Transfers", fmt.Sprintf("%d (%s%%)", s.FXTransferCount, s.FXTransferPercent.StringFixed(1))},
		{"Most Active", fmt.Sprintf("%s (%d)", s.MostActive.AccountName, s.MostActive.Transfers)},
		{"Accounts", fmt.Sprintf("%d", s.AccountCount)},
		{"Total Value", display.FormatMoney(s.TotalValue, s.ValueIn)},
	}
	if err := renderTable(w, "Analytics", data); err != nil {
		return err
	}

	breakdown := pterm.TableData{{"Currency", "Balance", "Moved"}}
	for _, code := range sortedCodes(s.Balances) {
		moved := s.TotalMoved[code]
		breakdown = append(breakdown, []string{
			string(code),
			display.FormatMoney(s.Balances[code], code),
			display.FormatMoney(moved, code),
		})
	}
	if err := renderTable(w, "Currency Breakdown", breakdown); err != nil {
		return err
	}

	for _, code := range s.Unpriced {
		fmt.Fprint(w, pterm.Warning.Sprintf("No %s rate to %s, left out of the total value\n", code, s.ValueIn))
	}
	return nil
}

func rateOrDash(rate *decimal.Decimal) string {
	if rate == nil {
		return "-"
	}
	return display.FormatRate(*rate)
}

func sortedCodes(m map[currency.Code]decimal.Decimal) []currency.Code {
	codes := make([]currency.Code, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
