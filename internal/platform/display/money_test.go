package display

import (
	"testing"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		code   currency.Code
		want   string
	}{
		{amount: "2500000", code: currency.KES, want: "KSh 2,500,000.00"},
		{amount: "15000", code: currency.USD, want: "$15,000.00"},
		{amount: "0.72", code: currency.USD, want: "$0.72"},
		{amount: "8500000.456", code: currency.NGN, want: "₦8,500,000.46"},
		{amount: "-1234.5", code: currency.USD, want: "-$1,234.50"},
		{amount: "999", code: "EUR", want: "EUR 999.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.amount), tt.code))
		})
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "KSh", Symbol(currency.KES))
	assert.Equal(t, "GBP", Symbol("GBP"))
}
