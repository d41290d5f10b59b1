package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"stocktrader/internal/models"
	"stocktrader/internal/services"
)

func TestQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockQuoteLookuper)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			form: url.Values{"symbol": {"nflx"}},
			mockSetup: func(m *MockQuoteLookuper) {
				m.EXPECT().Lookup(gomock.Any(), "NFLX").Return(&models.Quote{
					Symbol: "NFLX",
					Name:   "Netflix Inc",
					Price:  decimal.RequireFromString("512.30"),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "A share of Netflix Inc (NFLX) costs $512.30.",
		},
		{
			name:         "blank symbol",
			form:         url.Values{"symbol": {"   "}},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid symbol",
		},
		{
			name: "unknown symbol",
			form: url.Values{"symbol": {"ZZZZ"}},
			mockSetup: func(m *MockQuoteLookuper) {
				m.EXPECT().Lookup(gomock.Any(), "ZZZZ").
					Return(nil, services.ErrUnknownSymbol)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid symbol",
		},
		{
			name: "internal server error",
			form: url.Values{"symbol": {"NFLX"}},
			mockSetup: func(m *MockQuoteLookuper) {
				m.EXPECT().Lookup(gomock.Any(), "NFLX").
					Return(nil, assert.AnError)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuoteLookuper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := newFormRequest("/quote", tt.form)
			rec := httptest.NewRecorder()

			NewQuoteHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestQuoteHandler_GetRendersForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()

	NewQuoteHandler(NewMockQuoteLookuper(ctrl))(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "symbol")
}
