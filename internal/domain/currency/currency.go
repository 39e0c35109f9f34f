// Package currency holds currency codes, the directional exchange-rate table
// and the conversion rules built on it.
package currency

import (
	"errors"
	"strings"
)

var ErrInvalidCode = errors.New("currency must be a 3-letter code")

// Code is an upper-case three-letter currency code. The set is open: any
// code that parses is accepted, rates decide what can be converted.
type Code string

// Reference currencies used by the seed data.
const (
	USD Code = "USD"
	KES Code = "KES"
	NGN Code = "NGN"
)

// ParseCode normalizes s and checks it is three ASCII letters.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCode
	}
	return c, nil
}

// Valid reports whether c is exactly three upper-case ASCII letters.
func (c Code) Valid() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

func (c Code) String() string {
	return string(c)
}
