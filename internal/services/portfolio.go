package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
)

// HoldingsReader reads derived holdings and the raw trade history.
type HoldingsReader interface {
	Holdings(ctx context.Context, userID uuid.UUID) ([]models.Holding, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error)
}

// CashReader reads user records.
type CashReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// PortfolioService assembles the portfolio view and the trade history.
type PortfolioService struct {
	trades HoldingsReader
	users  CashReader
	quotes Quoter
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(trades HoldingsReader, users CashReader, quotes Quoter) *PortfolioService {
	return &PortfolioService{
		trades: trades,
		users:  users,
		quotes: quotes,
	}
}

// Portfolio returns all currently held positions priced at their live
// quotes, plus cash and the grand total. A position whose quote lookup
// fails is skipped rather than failing the whole view.
func (s *PortfolioService) Portfolio(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}

	holdings, err := s.trades.Holdings(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get holdings", "user_id", userID, "error", err)
		return nil, err
	}

	portfolio := &models.Portfolio{
		Cash:  user.Cash,
		Total: user.Cash,
	}

	for _, h := range holdings {
		quote, err := s.quotes.Lookup(ctx, h.Symbol)
		if err != nil {
			logger.Log.Warnw("skipping position with failed quote lookup",
				"user_id", userID, "symbol", h.Symbol, "error", err)
			continue
		}

		value := quote.Price.Mul(decimal.NewFromInt(h.Shares))
		portfolio.Rows = append(portfolio.Rows, models.PortfolioRow{
			Symbol: h.Symbol,
			Name:   quote.Name,
			Shares: h.Shares,
			Price:  quote.Price,
			Value:  value,
		})
		portfolio.Total = portfolio.Total.Add(value)
	}

	return portfolio, nil
}

// History returns every trade row for the user, oldest first.
func (s *PortfolioService) History(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error) {
	trades, err := s.trades.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list history", "user_id", userID, "error", err)
		return nil, err
	}
	return trades, nil
}

// HeldSymbols returns just the symbols of currently held positions, for
// the sell form.
func (s *PortfolioService) HeldSymbols(ctx context.Context, userID uuid.UUID) ([]string, error) {
	holdings, err := s.trades.Holdings(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get holdings", "user_id", userID, "error", err)
		return nil, err
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}
	return symbols, nil
}
