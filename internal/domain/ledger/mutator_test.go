package ledger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newTestMutator() *Mutator {
	n := 0
	return NewMutator(
		ClockFunc(func() time.Time { return fixedNow }),
		IDGeneratorFunc(func(prefix string) string {
			n++
			return fmt.Sprintf("%s-%d", prefix, n)
		}),
	)
}

func testAccounts() account.Accounts {
	return account.Accounts{
		{ID: "acc-001", Name: "Mpesa", Currency: currency.KES, Balance: decimal.NewFromInt(2500000), Type: "Mobile Money"},
		{ID: "acc-002", Name: "Bank", Currency: currency.USD, Balance: decimal.NewFromInt(15000), Type: "Bank Account"},
		{ID: "acc-005", Name: "Wise", Currency: currency.USD, Balance: decimal.NewFromInt(25000), Type: "Digital Wallet"},
		{ID: "acc-003", Name: "Flutterwave", Currency: currency.NGN, Balance: decimal.NewFromInt(8500000), Type: "Payment Gateway"},
	}
}

func testRates() currency.RateTable {
	return currency.RateTable{
		currency.NewPair(currency.KES, currency.USD): decimal.RequireFromString("0.0072"),
		currency.NewPair(currency.USD, currency.KES): decimal.RequireFromString("139"),
	}
}

func transfer(from, to, amount string) TransferRequest {
	return TransferRequest{FromAccountID: from, ToAccountID: to, Amount: decimal.RequireFromString(amount)}
}

func balances(as account.Accounts) map[string]string {
	out := make(map[string]string, len(as))
	for _, a := range as {
		out[a.ID] = a.Balance.String()
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     TransferRequest
		wantErr error
	}{
		{name: "missing source", req: transfer("nope", "acc-002", "10"), wantErr: ErrMissingSource},
		{name: "missing source wins over missing destination", req: transfer("nope", "nope2", "10"), wantErr: ErrMissingSource},
		{name: "missing destination", req: transfer("acc-002", "nope", "10"), wantErr: ErrMissingDestination},
		{name: "same account", req: transfer("acc-002", "acc-002", "10"), wantErr: ErrSameAccount},
		{name: "same account regardless of amount", req: transfer("acc-002", "acc-002", "-1"), wantErr: ErrSameAccount},
		{name: "zero amount", req: transfer("acc-002", "acc-005", "0"), wantErr: ErrInvalidAmount},
		{name: "negative amount", req: transfer("acc-002", "acc-005", "-5"), wantErr: ErrInvalidAmount},
		{name: "insufficient funds", req: transfer("acc-002", "acc-005", "15000.01"), wantErr: ErrInsufficientFunds},
		{name: "insufficient funds checked before conversion", req: transfer("acc-002", "acc-003", "99999"), wantErr: ErrInsufficientFunds},
		{name: "no rate", req: transfer("acc-002", "acc-003", "10"), wantErr: ErrConversionUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(testAccounts(), tt.req, testRates())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("conversion error carries the missing pair", func(t *testing.T) {
		_, err := Validate(testAccounts(), transfer("acc-002", "acc-003", "10"), testRates())

		var notFound currency.ErrRateNotFound
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "USD-NGN", notFound.Pair.String())
		assert.Equal(t, shared.FailureReasonConversionUnavailable, ReasonOf(err))
	})
}

func TestMutator_ExecuteTransfer(t *testing.T) {
	t.Run("SameCurrencyConservesTotal", func(t *testing.T) {
		m := newTestMutator()
		accounts := testAccounts()

		updated, txn, err := m.ExecuteTransfer(accounts, TransferRequest{
			FromAccountID: "acc-002",
			ToAccountID:   "acc-005",
			Amount:        decimal.RequireFromString("2500.50"),
			Note:          "  payroll top-up  ",
		}, testRates())
		require.NoError(t, err)

		got := balances(updated)
		assert.Equal(t, "12499.5", got["acc-002"])
		assert.Equal(t, "27500.5", got["acc-005"])
		assert.Equal(t, "2500000", got["acc-001"])
		assert.Equal(t, "8500000", got["acc-003"])

		before := accounts[1].Balance.Add(accounts[2].Balance)
		after := updated[1].Balance.Add(updated[2].Balance)
		assert.True(t, before.Equal(after))

		assert.Equal(t, "txn-1", txn.ID)
		assert.Equal(t, fixedNow, txn.Timestamp)
		assert.Equal(t, shared.TransferTypeTransfer, txn.Type)
		assert.Nil(t, txn.FXRate)
		assert.True(t, txn.Amount.Equal(txn.ConvertedAmount))
		assert.Equal(t, "payroll top-up", txn.Note)
		assert.Equal(t, "Bank", txn.FromAccountName)
		assert.Equal(t, "Wise", txn.ToAccountName)

		assert.Equal(t, "15000", accounts[1].Balance.String(), "input collection must not change")
	})

	t.Run("CrossCurrencyIsAsymmetric", func(t *testing.T) {
		m := newTestMutator()

		updated, txn, err := m.ExecuteTransfer(testAccounts(), transfer("acc-001", "acc-002", "100000"), testRates())
		require.NoError(t, err)

		got := balances(updated)
		assert.Equal(t, "2400000", got["acc-001"])
		assert.Equal(t, "15720", got["acc-002"])

		assert.Equal(t, shared.TransferTypeFXTransfer, txn.Type)
		require.NotNil(t, txn.FXRate)
		assert.Equal(t, "0.0072", txn.FXRate.String())
		assert.Equal(t, "720", txn.ConvertedAmount.String())
		assert.Equal(t, currency.KES, txn.FromCurrency)
		assert.Equal(t, currency.USD, txn.ToCurrency)
	})

	t.Run("WholeBalanceAllowed", func(t *testing.T) {
		updated, _, err := newTestMutator().ExecuteTransfer(testAccounts(), transfer("acc-002", "acc-005", "15000"), testRates())
		require.NoError(t, err)
		assert.Equal(t, "0", balances(updated)["acc-002"])
	})

	t.Run("InsufficientFundsLeavesBalances", func(t *testing.T) {
		accounts := testAccounts()
		before := balances(accounts)

		updated, _, err := newTestMutator().ExecuteTransfer(accounts, transfer("acc-002", "acc-005", "20000"), testRates())
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Nil(t, updated)
		assert.Equal(t, before, balances(accounts))
	})

	t.Run("IDsAreUniquePerTransfer", func(t *testing.T) {
		m := newTestMutator()
		_, first, err := m.ExecuteTransfer(testAccounts(), transfer("acc-002", "acc-005", "1"), testRates())
		require.NoError(t, err)
		_, second, err := m.ExecuteTransfer(testAccounts(), transfer("acc-002", "acc-005", "1"), testRates())
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestMutator_ScheduleTransfer(t *testing.T) {
	tomorrow := fixedNow.AddDate(0, 0, 1)

	t.Run("RecordsWithoutMovingMoney", func(t *testing.T) {
		accounts := testAccounts()
		before := balances(accounts)

		st, err := newTestMutator().ScheduleTransfer(accounts, ScheduleRequest{
			TransferRequest: transfer("acc-001", "acc-002", "1000"),
			ScheduledDate:   tomorrow,
		}, testRates())
		require.NoError(t, err)

		assert.Equal(t, before, balances(accounts))
		assert.Equal(t, "scheduled-1", st.ID)
		assert.Equal(t, shared.ScheduleStatusScheduled, st.Status)
		assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), st.ScheduledDate)
		assert.Equal(t, fixedNow, st.CreatedAt)
		assert.Equal(t, "7.2", st.ConvertedAmount.String())
		assert.Equal(t, shared.TransferTypeFXTransfer, st.Type)
	})

	t.Run("TodayIsAllowed", func(t *testing.T) {
		_, err := newTestMutator().ScheduleTransfer(testAccounts(), ScheduleRequest{
			TransferRequest: transfer("acc-002", "acc-005", "1"),
			ScheduledDate:   time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		}, testRates())
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		req     ScheduleRequest
		wantErr error
	}{
		{
			name:    "missing date",
			req:     ScheduleRequest{TransferRequest: transfer("acc-002", "acc-005", "1")},
			wantErr: ErrMissingScheduleDate,
		},
		{
			name:    "past date",
			req:     ScheduleRequest{TransferRequest: transfer("acc-002", "acc-005", "1"), ScheduledDate: fixedNow.AddDate(0, 0, -1)},
			wantErr: ErrScheduleDateInPast,
		},
		{
			name:    "transfer rules run first",
			req:     ScheduleRequest{TransferRequest: transfer("acc-002", "acc-002", "1")},
			wantErr: ErrSameAccount,
		},
		{
			name:    "insufficient funds",
			req:     ScheduleRequest{TransferRequest: transfer("acc-002", "acc-005", "15001"), ScheduledDate: tomorrow},
			wantErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestMutator().ScheduleTransfer(testAccounts(), tt.req, testRates())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCancelScheduledTransfer(t *testing.T) {
	list := []ScheduledTransfer{{ID: "scheduled-1"}, {ID: "scheduled-2"}, {ID: "scheduled-3"}}

	once := CancelScheduledTransfer(list, "scheduled-2")
	assert.Equal(t, []ScheduledTransfer{{ID: "scheduled-1"}, {ID: "scheduled-3"}}, once)

	twice := CancelScheduledTransfer(once, "scheduled-2")
	assert.Equal(t, once, twice)

	assert.Len(t, list, 3, "input list must not change")
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount(" 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, "12.5", amount.String())

	for _, bad := range []string{"", "abc", "0", "-3", "NaN", "Infinity"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}
}

func TestParseScheduleDate(t *testing.T) {
	d, err := ParseScheduleDate("2026-04-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseScheduleDate("  ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseScheduleDate("01/04/2026")
	assert.Error(t, err)
}
