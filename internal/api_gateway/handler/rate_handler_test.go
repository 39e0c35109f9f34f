package handler

import (
	"net/http"
	"testing"

	"github.com/shannicec/moneymorph/internal/api_gateway/service"
	"github.com/shannicec/moneymorph/internal/domain/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRateHandler_List(t *testing.T) {
	mockService := new(MockRateService)
	handler := NewRateHandler(testLogger(), mockService)
	router := setupTestRouter(t)
	router.GET("/rates", handler.List)

	mockService.On("GetRates", mock.Anything).Return(currency.RateTable{
		currency.NewPair(currency.USD, currency.KES): decimal.NewFromInt(139),
		currency.NewPair(currency.KES, currency.USD): decimal.RequireFromString("0.0072"),
	}, nil).Once()

	rr := serve(router, http.MethodGet, "/rates", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var body []RateResponse
	decodeResponse(t, rr, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "KES-USD", body[0].Pair)
	assert.Equal(t, "USD-KES", body[1].Pair)
}

func TestRateHandler_Update(t *testing.T) {
	t.Run("AcceptsNumbersAndStrings", func(t *testing.T) {
		mockService := new(MockRateService)
		handler := NewRateHandler(testLogger(), mockService)
		router := setupTestRouter(t)
		router.PUT("/rates", handler.Update)

		mockService.On("UpdateRates", mock.Anything, map[string]string{
			"KES-USD": "0.0073",
			"USD-KES": "140",
			"NGN-USD": "true",
		}).Return(currency.RateTable{}, nil).Once()

		rr := serve(router, http.MethodPut, "/rates", `{"rates":{"KES-USD":0.0073,"USD-KES":"140","NGN-USD":true}}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingRates", func(t *testing.T) {
		handler := NewRateHandler(testLogger(), new(MockRateService))
		router := setupTestRouter(t)
		router.PUT("/rates", handler.Update)

		rr := serve(router, http.MethodPut, "/rates", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRateHandler_Convert(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(m *MockRateService)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "success lowercases codes",
			query: "amount=100000&from=kes&to=USD",
			setupMock: func(m *MockRateService) {
				rate := decimal.RequireFromString("0.0072")
				m.On("Convert", mock.Anything, decimalEq("100000"), currency.KES, currency.USD).
					Return(service.Conversion{ConvertedAmount: decimal.NewFromInt(720), Rate: &rate}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid currency",
			query:      "amount=1&from=KESX&to=USD",
			setupMock:  func(*MockRateService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "invalid amount",
			query:      "amount=ten&from=KES&to=USD",
			setupMock:  func(*MockRateService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:  "rate not found",
			query: "amount=1&from=USD&to=EUR",
			setupMock: func(m *MockRateService) {
				m.On("Convert", mock.Anything, mock.Anything, currency.USD, currency.Code("EUR")).
					Return(service.Conversion{}, currency.ErrRateNotFound{Pair: currency.NewPair(currency.USD, "EUR")}).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "RATE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRateService)
			tt.setupMock(mockService)
			handler := NewRateHandler(testLogger(), mockService)
			router := setupTestRouter(t)
			router.GET("/convert", handler.Convert)

			rr := serve(router, http.MethodGet, "/convert?"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				resp := decodeResponse(t, rr, nil)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}
