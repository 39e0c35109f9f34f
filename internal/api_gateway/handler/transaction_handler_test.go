package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shannicec/moneymorph/internal/domain/ledger"
	"github.com/shannicec/moneymorph/internal/domain/shared"
	"github.com/shannicec/moneymorph/internal/platform/tabular"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sampleTxn = ledger.Transaction{
	ID:              "txn-1",
	Timestamp:       time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	FromAccountID:   "acc-001",
	ToAccountID:     "acc-002",
	FromAccountName: "Mpesa",
	ToAccountName:   "Bank",
	Amount:          decimal.NewFromInt(100000),
	ConvertedAmount: decimal.NewFromInt(720),
	FromCurrency:    currency.KES,
	ToCurrency:      currency.USD,
	Type:            shared.TransferTypeFXTransfer,
}

func TestTransactionHandler_Transfer(t *testing.T) {
	matchesRequest := mock.MatchedBy(func(req ledger.TransferRequest) bool {
		return req.FromAccountID == "acc-001" && req.ToAccountID == "acc-002" &&
			req.Amount.Equal(decimal.NewFromInt(100000)) && req.Note == "payroll"
	})

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockTransactionService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success with numeric amount",
			body: `{"from_account_id":"acc-001","to_account_id":"acc-002","amount":100000,"note":"payroll"}`,
			setupMock: func(m *MockTransactionService) {
				m.On("Transfer", mock.Anything, matchesRequest).Return(sampleTxn, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "success with string amount",
			body: `{"from_account_id":"acc-001","to_account_id":"acc-002","amount":"100000","note":"payroll"}`,
			setupMock: func(m *MockTransactionService) {
				m.On("Transfer", mock.Anything, matchesRequest).Return(sampleTxn, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"from_account_id":`,
			setupMock:  func(*MockTransactionService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name: "unparsable amount reaches the rules as zero",
			body: `{"to_account_id":"acc-002","amount":"abc"}`,
			setupMock: func(m *MockTransactionService) {
				zero := mock.MatchedBy(func(req ledger.TransferRequest) bool {
					return req.FromAccountID == "" && req.Amount.IsZero()
				})
				m.On("Transfer", mock.Anything, zero).Return(ledger.Transaction{}, ledger.ErrMissingSource).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_SOURCE",
		},
		{
			name: "missing source",
			body: `{"to_account_id":"acc-002","amount":1}`,
			setupMock: func(m *MockTransactionService) {
				m.On("Transfer", mock.Anything, mock.Anything).Return(ledger.Transaction{}, ledger.ErrMissingSource).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "MISSING_SOURCE",
		},
		{
			name: "insufficient funds",
			body: `{"from_account_id":"acc-010","to_account_id":"acc-002","amount":9999999}`,
			setupMock: func(m *MockTransactionService) {
				m.On("Transfer", mock.Anything, mock.Anything).Return(ledger.Transaction{}, ledger.ErrInsufficientFunds).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INSUFFICIENT_FUNDS",
		},
		{
			name: "conversion unavailable",
			body: `{"from_account_id":"acc-001","to_account_id":"acc-011","amount":1}`,
			setupMock: func(m *MockTransactionService) {
				err := fmt.Errorf("%w: %w", ledger.ErrConversionUnavailable,
					currency.ErrRateNotFound{Pair: currency.NewPair(currency.KES, "EUR")})
				m.On("Transfer", mock.Anything, mock.Anything).Return(ledger.Transaction{}, err).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "CONVERSION_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTransactionService)
			tt.setupMock(mockService)
			handler := NewTransactionHandler(testLogger(), mockService)
			router := setupTestRouter(t)
			router.POST("/transfers", handler.Transfer)

			rr := serve(router, http.MethodPost, "/transfers", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				resp := decodeResponse(t, rr, nil)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			} else {
				var txn ledger.Transaction
				decodeResponse(t, rr, &txn)
				assert.Equal(t, "txn-1", txn.ID)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestTransactionHandler_List(t *testing.T) {
	t.Run("PaginatedAndFiltered", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewTransactionHandler(testLogger(), mockService)
		router := setupTestRouter(t)
		router.GET("/transactions", handler.List)

		mockService.On("ListTransactions", mock.Anything, service.TransactionFilter{
			Query: "mpesa", Type: shared.TransferTypeFXTransfer, Currency: currency.KES, Page: 2, PerPage: 1,
		}).Return([]ledger.Transaction{sampleTxn}, 3, nil).Once()

		rr := serve(router, http.MethodGet, "/transactions?q=mpesa&type=fx-transfer&currency=kes&page=2&per_page=1", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		var txns []ledger.Transaction
		resp := decodeResponse(t, rr, &txns)
		require.Len(t, txns, 1)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 3, resp.Meta.TotalItems)
		assert.Equal(t, 3, resp.Meta.TotalPages)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidType", func(t *testing.T) {
		handler := NewTransactionHandler(testLogger(), new(MockTransactionService))
		router := setupTestRouter(t)
		router.GET("/transactions", handler.List)

		rr := serve(router, http.MethodGet, "/transactions?type=deposit", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("InvalidCurrency", func(t *testing.T) {
		handler := NewTransactionHandler(testLogger(), new(MockTransactionService))
		router := setupTestRouter(t)
		router.GET("/transactions", handler.List)

		rr := serve(router, http.MethodGet, "/transactions?currency=dollars", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTransactionHandler_GetByID(t *testing.T) {
	mockService := new(MockTransactionService)
	handler := NewTransactionHandler(testLogger(), mockService)
	router := setupTestRouter(t)
	router.GET("/transactions/:id", handler.GetByID)

	mockService.On("GetTransaction", mock.Anything, "txn-1").Return(sampleTxn, nil).Once()
	mockService.On("GetTransaction", mock.Anything, "txn-9").
		Return(ledger.Transaction{}, ledger.ErrTransactionNotFound{TransactionID: "txn-9"}).Once()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/transactions/txn-1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/transactions/txn-9", "").Code)
	mockService.AssertExpectations(t)
}

func TestTransactionHandler_Export(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewTransactionHandler(testLogger(), mockService)
		router := setupTestRouter(t)
		router.GET("/transactions/export", handler.Export)

		mockService.On("ExportTransactions", mock.Anything, service.TransactionFilter{}).Return(nil, tabular.ErrEmptyExport).Once()

		rr := serve(router, http.MethodGet, "/transactions/export", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		resp := decodeResponse(t, rr, nil)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "EMPTY_EXPORT", resp.Error.Code)
	})

	t.Run("Attachment", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewTransactionHandler(testLogger(), mockService)
		handler.now = func() time.Time { return time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC) }
		router := setupTestRouter(t)
		router.GET("/transactions/export", handler.Export)

		mockService.On("ExportTransactions", mock.Anything, service.TransactionFilter{}).Return([]byte("Transaction ID\ntxn-1"), nil).Once()

		rr := serve(router, http.MethodGet, "/transactions/export", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `attachment; filename="money-morph-transactions-2026-03-14.csv"`, rr.Header().Get("Content-Disposition"))
	})
	t.Run("FilteredToNothing", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewTransactionHandler(testLogger(), mockService)
		router := setupTestRouter(t)
		router.GET("/transactions/export", handler.Export)

		mockService.On("ExportTransactions", mock.Anything, service.TransactionFilter{
			Query: "payroll", Type: shared.TransferTypeTransfer, Currency: currency.NGN,
		}).Return(nil, tabular.ErrEmptyExport).Once()

		rr := serve(router, http.MethodGet, "/transactions/export?q=payroll&type=transfer&currency=NGN&page=4", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		resp := decodeResponse(t, rr, nil)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "EMPTY_EXPORT", resp.Error.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidType", func(t *testing.T) {
		handler := NewTransactionHandler(testLogger(), new(MockTransactionService))
		router := setupTestRouter(t)
		router.GET("/transactions/export", handler.Export)

		rr := serve(router, http.MethodGet, "/transactions/export?type=deposit", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
