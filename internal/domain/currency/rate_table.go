package currency

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidPair = errors.New("rate pair must look like FROM-TO with two different currencies")

// Pair is an ordered currency pair. KES-USD and USD-KES are different pairs.
type Pair struct {
	From Code
	To   Code
}

// NewPair builds the ordered pair from -> to.
func NewPair(from, to Code) Pair {
	return Pair{From: from, To: to}
}

// ParsePair parses the "FROM-TO" form used as the rate table key.
func ParsePair(s string) (Pair, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Pair{}, ErrInvalidPair
	}
	fromCode, err := ParseCode(from)
	if err != nil {
		return Pair{}, ErrInvalidPair
	}
	toCode, err := ParseCode(to)
	if err != nil {
		return Pair{}, ErrInvalidPair
	}
	if fromCode == toCode {
		return Pair{}, ErrInvalidPair
	}
	return Pair{From: fromCode, To: toCode}, nil
}

func (p Pair) String() string {
	return string(p.From) + "-" + string(p.To)
}

// MarshalText lets a Pair be used as a JSON object key.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pair) UnmarshalText(text []byte) error {
	parsed, err := ParsePair(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ErrRateNotFound indicates the table has no entry for an ordered pair
type ErrRateNotFound struct {
	Pair Pair
}

func (e ErrRateNotFound) Error() string {
	return "exchange rate not found for " + e.Pair.String()
}

// RateTable maps an ordered pair to a strictly positive rate. Each direction
// is an independent entry; nothing derives one from its inverse.
type RateTable map[Pair]decimal.Decimal

// Rate returns the configured rate for from -> to.
func (t RateTable) Rate(from, to Code) (decimal.Decimal, error) {
	pair := NewPair(from, to)
	rate, ok := t[pair]
	if !ok {
		return decimal.Zero, ErrRateNotFound{Pair: pair}
	}
	return rate, nil
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	clone := make(RateTable, len(t))
	for pair, rate := range t {
		clone[pair] = rate
	}
	return clone
}

// Pairs returns the table keys in lexical order.
func (t RateTable) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t))
	for pair := range t {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].String() < pairs[j].String()
	})
	return pairs
}
