// Package display renders amounts for people. Nothing in the domain
// packages depends on it.
package display

import (
	"strings"

	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shopspring/decimal"
)

var symbols = map[currency.Code]string{
	currency.USD: "$",
	currency.KES: "KSh",
	currency.NGN: "₦",
}

// Symbol returns the display symbol for code, or the code itself.
func Symbol(code currency.Code) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return string(code)
}

// FormatMoney renders amount with the currency symbol, thousands separators
// and two decimals, e.g. "KSh 2,500,000.00" or "$15,000.00".
func FormatMoney(amount decimal.Decimal, code currency.Code) string {
	number := groupThousands(amount.StringFixed(2))
	switch s := Symbol(code); {
	case s == "$" || s == "₦":
		if strings.HasPrefix(number, "-") {
			return "-" + s + number[1:]
		}
		return s + number
	default:
		return s + " " + number
	}
}

// FormatRate renders an exchange rate without trailing zeros.
func FormatRate(rate decimal.Decimal) string {
	return rate.String()
}

func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
