package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"stocktrader/internal/middlewares"
	"stocktrader/internal/services"
)

func TestSellHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name             string
		form             url.Values
		mockSetup        func(m *MockSeller)
		expectedCode     int
		expectedLocation string
		expectedBody     string
	}{
		{
			name: "success",
			form: url.Values{"symbol": {"nflx"}, "shares": {"2"}},
			mockSetup: func(m *MockSeller) {
				m.EXPECT().Sell(gomock.Any(), userID, "NFLX", int64(2)).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/",
		},
		{
			name:         "missing symbol",
			form:         url.Values{"shares": {"2"}},
			expectedCode: http.StatusForbidden,
			expectedBody: "must provide symbol",
		},
		{
			name:         "invalid shares",
			form:         url.Values{"symbol": {"NFLX"}, "shares": {"-1"}},
			expectedCode: http.StatusForbidden,
			expectedBody: "must provide a positive number of shares",
		},
		{
			name: "unknown symbol",
			form: url.Values{"symbol": {"ZZZZ"}, "shares": {"1"}},
			mockSetup: func(m *MockSeller) {
				m.EXPECT().Sell(gomock.Any(), userID, "ZZZZ", int64(1)).
					Return(services.ErrUnknownSymbol)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: "invalid symbol",
		},
		{
			name: "too many shares",
			form: url.Values{"symbol": {"NFLX"}, "shares": {"99"}},
			mockSetup: func(m *MockSeller) {
				m.EXPECT().Sell(gomock.Any(), userID, "NFLX", int64(99)).
					Return(services.ErrTooManyShares)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: "too many shares",
		},
		{
			name: "internal server error",
			form: url.Values{"symbol": {"NFLX"}, "shares": {"1"}},
			mockSetup: func(m *MockSeller) {
				m.EXPECT().Sell(gomock.Any(), userID, "NFLX", int64(1)).
					Return(assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSeller(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := newAuthedFormRequest("/sell", tt.form, userID)
			rec := httptest.NewRecorder()

			NewSellHandler(mockSvc, NewMockHeldSymbolsReader(ctrl))(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestSellHandler_GetRendersHeldSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockPortfolio := NewMockHeldSymbolsReader(ctrl)
	mockPortfolio.EXPECT().HeldSymbols(gomock.Any(), userID).
		Return([]string{"AAPL", "NFLX"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sell", nil)
	req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()

	NewSellHandler(NewMockSeller(ctrl), mockPortfolio)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AAPL")
	assert.Contains(t, rec.Body.String(), "NFLX")
}

func TestSellHandler_GetHeldSymbolsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockPortfolio := NewMockHeldSymbolsReader(ctrl)
	mockPortfolio.EXPECT().HeldSymbols(gomock.Any(), userID).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/sell", nil)
	req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()

	NewSellHandler(NewMockSeller(ctrl), mockPortfolio)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}
