package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/domain/account"
	"github.com/shannicec/moneymorph/internal/domain/analytics"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context) (account.Accounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(account.Accounts), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, id string) (account.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(account.Account), args.Error(1)
}

func (m *MockAccountService) ExportAccounts(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAccountService) ImportAccounts(ctx context.Context, csv string) (account.Accounts, error) {
	args := m.Called(ctx, csv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(account.Accounts), args.Error(1)
}

type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRates(ctx context.Context) (currency.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(currency.RateTable), args.Error(1)
}

func (m *MockRateService) UpdateRates(ctx context.Context, edits map[string]string) (currency.RateTable, error) {
	args := m.Called(ctx, edits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(currency.RateTable), args.Error(1)
}

func (m *MockRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to currency.Code) (service.Conversion, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(service.Conversion), args.Error(1)
}

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Transfer(ctx context.Context, req ledger.TransferRequest) (ledger.Transaction, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ledger.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter service.TransactionFilter) ([]ledger.Transaction, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]ledger.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, id string) (ledger.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ledger.Transaction), args.Error(1)
}

func (m *MockTransactionService) ExportTransactions(ctx context.Context, filter service.TransactionFilter) ([]byte, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) ScheduleTransfer(ctx context.Context, req ledger.ScheduleRequest) (ledger.ScheduledTransfer, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ledger.ScheduledTransfer), args.Error(1)
}

func (m *MockScheduleService) ListScheduled(ctx context.Context) ([]ledger.ScheduledTransfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.ScheduledTransfer), args.Error(1)
}

func (m *MockScheduleService) CancelScheduled(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Summary(ctx context.Context) (analytics.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(analytics.Summary), args.Error(1)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())
	return gin.New()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) Response {
	t.Helper()
	var raw struct {
		Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.Response
}


func decimalEq(want string) any {
	expected := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}
