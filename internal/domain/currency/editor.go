package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UpdateRates merges raw edits over current and returns the full
// replacement table. Keys use the "FROM-TO" form. An edit whose key does not
// parse, or whose value is not a positive number, is dropped without error.
// Editing one direction never touches its inverse.
func UpdateRates(current RateTable, edits map[string]string) RateTable {
	updated := current.Clone()
	for key, raw := range edits {
		pair, err := ParsePair(key)
		if err != nil {
			continue
		}
		rate, ok := ParseRate(raw)
		if !ok {
			continue
		}
		updated[pair] = rate
	}
	return updated
}

// ParseRate parses a rate value, accepting only positive numbers.
func ParseRate(raw string) (decimal.Decimal, bool) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}
