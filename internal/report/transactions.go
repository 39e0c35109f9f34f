// Package report turns ledger and account state into flat tabular records
// and back.
package report

import (
	"time"

	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/platform/tabular"
)

// TransactionsFileBase is the base name of transaction exports
const TransactionsFileBase = "money-morph-transactions"

// TransactionHeaders is the column order of a transaction export
var TransactionHeaders = []string{
	"Transaction ID",
	"Date",
	"Time",
	"From Account",
	"To Account",
	"Amount Sent",
	"From Currency",
	"Amount Received",
	"To Currency",
	"FX Rate",
	"Transfer Type",
	"Note",
}

// TransactionRecords flattens transactions for export, keeping their order.
func TransactionRecords(txns []ledger.Transaction) []tabular.Record {
	records := make([]tabular.Record, 0, len(txns))
	for _, txn := range txns {
		fxRate := "N/A"
		if txn.FXRate != nil {
			fxRate = txn.FXRate.String()
		}
		records = append(records, tabular.Record{
			"Transaction ID":  txn.ID,
			"Date":            txn.Timestamp.Format(time.DateOnly),
			"Time":            txn.Timestamp.Format(time.TimeOnly),
			"From Account":    txn.FromAccountName,
			"To Account":      txn.ToAccountName,
			"Amount Sent":     txn.Amount.String(),
			"From Currency":   string(txn.FromCurrency),
			"Amount Received": txn.ConvertedAmount.String(),
			"To Currency":     string(txn.ToCurrency),
			"FX Rate":         fxRate,
			"Transfer Type":   string(txn.Type),
			"Note":            txn.Note,
		})
	}
	return records
}

// ExportTransactions renders transactions as CSV.
func ExportTransactions(txns []ledger.Transaction) ([]byte, error) {
	return tabular.Export(TransactionHeaders, TransactionRecords(txns))
}
