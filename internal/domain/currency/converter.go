package currency

import "github.com/shopspring/decimal"

// Convert turns amount in from into the equivalent amount in to.
// Same-currency conversion is the identity and never consults the table.
// No rounding happens here.
func Convert(amount decimal.Decimal, from, to Code, rates RateTable) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, err := rates.Rate(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}
