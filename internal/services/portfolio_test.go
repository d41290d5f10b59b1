package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktrader/internal/models"
)

func TestPortfolioService_Portfolio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{
		UserID: userID,
		Cash:   decimal.RequireFromString("8500.00"),
	}

	t.Run("prices all holdings and totals them with cash", func(t *testing.T) {
		mockTrades := NewMockHoldingsReader(ctrl)
		mockUsers := NewMockCashReader(ctrl)
		mockQuotes := NewMockQuoter(ctrl)

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockTrades.EXPECT().Holdings(gomock.Any(), userID).Return([]models.Holding{
			{Symbol: "AAPL", Shares: 10},
			{Symbol: "NFLX", Shares: 2},
		}, nil)
		mockQuotes.EXPECT().Lookup(gomock.Any(), "AAPL").Return(&models.Quote{
			Symbol: "AAPL", Name: "Apple Inc", Price: decimal.RequireFromString("100.00"),
		}, nil)
		mockQuotes.EXPECT().Lookup(gomock.Any(), "NFLX").Return(&models.Quote{
			Symbol: "NFLX", Name: "Netflix Inc", Price: decimal.RequireFromString("250.00"),
		}, nil)

		svc := NewPortfolioService(mockTrades, mockUsers, mockQuotes)
		portfolio, err := svc.Portfolio(context.Background(), userID)
		require.NoError(t, err)

		require.Len(t, portfolio.Rows, 2)
		assert.Equal(t, "AAPL", portfolio.Rows[0].Symbol)
		assert.True(t, portfolio.Rows[0].Value.Equal(decimal.RequireFromString("1000.00")))
		assert.Equal(t, "NFLX", portfolio.Rows[1].Symbol)
		assert.True(t, portfolio.Rows[1].Value.Equal(decimal.RequireFromString("500.00")))
		assert.True(t, portfolio.Cash.Equal(decimal.RequireFromString("8500.00")))
		assert.True(t, portfolio.Total.Equal(decimal.RequireFromString("10000.00")))
	})

	t.Run("skips holdings whose quote lookup fails", func(t *testing.T) {
		mockTrades := NewMockHoldingsReader(ctrl)
		mockUsers := NewMockCashReader(ctrl)
		mockQuotes := NewMockQuoter(ctrl)

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockTrades.EXPECT().Holdings(gomock.Any(), userID).Return([]models.Holding{
			{Symbol: "AAPL", Shares: 10},
			{Symbol: "GONE", Shares: 1},
		}, nil)
		mockQuotes.EXPECT().Lookup(gomock.Any(), "AAPL").Return(&models.Quote{
			Symbol: "AAPL", Name: "Apple Inc", Price: decimal.RequireFromString("100.00"),
		}, nil)
		mockQuotes.EXPECT().Lookup(gomock.Any(), "GONE").Return(nil, ErrUnknownSymbol)

		svc := NewPortfolioService(mockTrades, mockUsers, mockQuotes)
		portfolio, err := svc.Portfolio(context.Background(), userID)
		require.NoError(t, err)

		require.Len(t, portfolio.Rows, 1)
		assert.Equal(t, "AAPL", portfolio.Rows[0].Symbol)
		assert.True(t, portfolio.Total.Equal(decimal.RequireFromString("9500.00")))
	})

	t.Run("empty holdings leaves total equal to cash", func(t *testing.T) {
		mockTrades := NewMockHoldingsReader(ctrl)
		mockUsers := NewMockCashReader(ctrl)

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockTrades.EXPECT().Holdings(gomock.Any(), userID).Return(nil, nil)

		svc := NewPortfolioService(mockTrades, mockUsers, NewMockQuoter(ctrl))
		portfolio, err := svc.Portfolio(context.Background(), userID)
		require.NoError(t, err)

		assert.Empty(t, portfolio.Rows)
		assert.True(t, portfolio.Total.Equal(user.Cash))
	})

	t.Run("user read failure", func(t *testing.T) {
		mockUsers := NewMockCashReader(ctrl)
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, assert.AnError)

		svc := NewPortfolioService(NewMockHoldingsReader(ctrl), mockUsers, NewMockQuoter(ctrl))
		_, err := svc.Portfolio(context.Background(), userID)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("holdings read failure", func(t *testing.T) {
		mockTrades := NewMockHoldingsReader(ctrl)
		mockUsers := NewMockCashReader(ctrl)

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockTrades.EXPECT().Holdings(gomock.Any(), userID).Return(nil, assert.AnError)

		svc := NewPortfolioService(mockTrades, mockUsers, NewMockQuoter(ctrl))
		_, err := svc.Portfolio(context.Background(), userID)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestPortfolioService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	trades := []models.TradeDB{
		{
			TradeID:   uuid.New(),
			UserID:    userID,
			Symbol:    "AAPL",
			Shares:    5,
			Price:     decimal.RequireFromString("150.00"),
			CreatedAt: time.Now(),
		},
	}

	mockTrades := NewMockHoldingsReader(ctrl)
	mockTrades.EXPECT().ListByUser(gomock.Any(), userID).Return(trades, nil)

	svc := NewPortfolioService(mockTrades, NewMockCashReader(ctrl), NewMockQuoter(ctrl))
	got, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, trades, got)
}

func TestPortfolioService_HeldSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name        string
		mockSetup   func(m *MockHoldingsReader)
		expected    []string
		expectedErr error
	}{
		{
			name: "success",
			mockSetup: func(m *MockHoldingsReader) {
				m.EXPECT().Holdings(gomock.Any(), userID).Return([]models.Holding{
					{Symbol: "AAPL", Shares: 10},
					{Symbol: "NFLX", Shares: 2},
				}, nil)
			},
			expected: []string{"AAPL", "NFLX"},
		},
		{
			name: "no holdings",
			mockSetup: func(m *MockHoldingsReader) {
				m.EXPECT().Holdings(gomock.Any(), userID).Return(nil, nil)
			},
			expected: []string{},
		},
		{
			name: "holdings read failure",
			mockSetup: func(m *MockHoldingsReader) {
				m.EXPECT().Holdings(gomock.Any(), userID).Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTrades := NewMockHoldingsReader(ctrl)
			tt.mockSetup(mockTrades)

			svc := NewPortfolioService(mockTrades, NewMockCashReader(ctrl), NewMockQuoter(ctrl))
			got, err := svc.HeldSymbols(context.Background(), userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
