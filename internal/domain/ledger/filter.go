package ledger

import (
	"strings"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/shared"
)

// Criteria selects transactions from the log. Zero fields match everything.
type Criteria struct {
	Query    string              // case-insensitive, over both account names and the note
	Type     shared.TransferType // exact transfer type
	Currency currency.Code       // either side of the transfer
}

// Filter keeps the transactions matching every set field of c, in log order.
func Filter(txns []Transaction, c Criteria) []Transaction {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		if c.Type != "" && txn.Type != c.Type {
			continue
		}
		if c.Currency != "" && txn.FromCurrency != c.Currency && txn.ToCurrency != c.Currency {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(txn.FromAccountName), query) &&
			!strings.Contains(strings.ToLower(txn.ToAccountName), query) &&
			!strings.Contains(strings.ToLower(txn.Note), query) {
			continue
		}
		out = append(out, txn)
	}
	return out
}
