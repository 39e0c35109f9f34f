package currency

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{name: "upper case", input: "USD", want: USD},
		{name: "lower case is normalized", input: " kes ", want: KES},
		{name: "too short", input: "US", wantErr: true},
		{name: "digits", input: "U5D", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePair(t *testing.T) {
	pair, err := ParsePair("kes-usd")
	require.NoError(t, err)
	assert.Equal(t, NewPair(KES, USD), pair)

	for _, bad := range []string{"KESUSD", "KES-", "-USD", "KES-KES", "KES-US1"} {
		_, err := ParsePair(bad)
		assert.ErrorIs(t, err, ErrInvalidPair, bad)
	}
}

func TestRateTable_JSON(t *testing.T) {
	table := RateTable{NewPair(KES, USD): decimal.RequireFromString("0.0072")}

	data, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"KES-USD":"0.0072"}`, string(data))

	var decoded RateTable
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded[NewPair(KES, USD)].Equal(table[NewPair(KES, USD)]))
}

func TestRateTable_CloneAndPairs(t *testing.T) {
	table := testRates()
	clone := table.Clone()
	clone[NewPair(KES, USD)] = decimal.NewFromInt(1)

	assert.Equal(t, "0.0072", table[NewPair(KES, USD)].String(), "clone must not share storage")
	assert.Equal(t, []Pair{NewPair(KES, USD), NewPair(NGN, USD), NewPair(USD, KES)}, table.Pairs())
}
