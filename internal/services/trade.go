package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
)

var (
	// ErrInsufficientFunds is returned when a buy would cost more than the user's cash.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTooManyShares is returned when a sell exceeds the currently held share count.
	ErrTooManyShares = errors.New("too many shares")
)

// TradeWriter appends trade records.
type TradeWriter interface {
	Save(ctx context.Context, userID uuid.UUID, symbol string, shares int64, price decimal.Decimal) (uuid.UUID, error) // Appends one signed trade row
}

// PositionReader reads derived share positions.
type PositionReader interface {
	SumShares(ctx context.Context, userID uuid.UUID, symbol string) (int64, error) // Current position for user+symbol
}

// CashWriter mutates the user's cash balance.
type CashWriter interface {
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)  // Guarded subtraction, sql.ErrNoRows when insufficient
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) // Unconditional addition
}

// Quoter resolves symbols to quotes.
type Quoter interface {
	Lookup(ctx context.Context, symbol string) (*models.Quote, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TradeService executes buys and sells and publishes trade events.
type TradeService struct {
	trades      TradeWriter
	positions   PositionReader
	cash        CashWriter
	quotes      Quoter
	kafkaWriter EventWriter
}

// NewTradeService creates a new TradeService. kafkaWriter may be nil, in
// which case trade events are not published.
func NewTradeService(
	trades TradeWriter,
	positions PositionReader,
	cash CashWriter,
	quotes Quoter,
	kafkaWriter EventWriter,
) *TradeService {
	return &TradeService{
		trades:      trades,
		positions:   positions,
		cash:        cash,
		quotes:      quotes,
		kafkaWriter: kafkaWriter,
	}
}

// publishTrade publishes a completed trade to Kafka.
func (s *TradeService) publishTrade(ctx context.Context, event models.TradeEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "trade_id", event.TradeID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal trade event", "trade_id", event.TradeID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TradeID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish trade event", "trade_id", event.TradeID, "error", err)
	} else {
		logger.Log.Infow("trade event published", "trade_id", event.TradeID, "symbol", event.Symbol)
	}
}

// Buy purchases shares of symbol at the current quoted price. The cash
// debit is guarded, so a concurrent buy cannot push the balance negative;
// the caller wraps the whole operation in one database transaction.
func (s *TradeService) Buy(ctx context.Context, userID uuid.UUID, symbol string, shares int64) error {
	quote, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return err
	}

	cost := quote.Price.Mul(decimal.NewFromInt(shares))

	if _, err := s.cash.Debit(ctx, userID, cost); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("insufficient funds",
				"user_id", userID, "symbol", symbol, "cost", cost)
			return ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit cash", "user_id", userID, "error", err)
		return err
	}

	tradeID, err := s.trades.Save(ctx, userID, quote.Symbol, shares, quote.Price)
	if err != nil {
		logger.Log.Errorw("failed to record buy", "user_id", userID, "symbol", symbol, "error", err)
		return err
	}

	s.publishTrade(ctx, models.TradeEvent{
		TradeID:   tradeID.String(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Symbol:    quote.Symbol,
		Shares:    shares,
		Price:     quote.Price.String(),
		Side:      "buy",
	})

	return nil
}

// Sell disposes shares of symbol at the current quoted price. The held
// position is re-read before the sell so the summed share count can never
// go negative.
func (s *TradeService) Sell(ctx context.Context, userID uuid.UUID, symbol string, shares int64) error {
	owned, err := s.positions.SumShares(ctx, userID, symbol)
	if err != nil {
		logger.Log.Errorw("failed to read position", "user_id", userID, "symbol", symbol, "error", err)
		return err
	}
	if shares > owned {
		logger.Log.Errorw("oversell rejected",
			"user_id", userID, "symbol", symbol, "requested", shares, "owned", owned)
		return ErrTooManyShares
	}

	quote, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return err
	}

	tradeID, err := s.trades.Save(ctx, userID, quote.Symbol, -shares, quote.Price)
	if err != nil {
		logger.Log.Errorw("failed to record sell", "user_id", userID, "symbol", symbol, "error", err)
		return err
	}

	proceeds := quote.Price.Mul(decimal.NewFromInt(shares))
	if _, err := s.cash.Credit(ctx, userID, proceeds); err != nil {
		logger.Log.Errorw("failed to credit cash", "user_id", userID, "error", err)
		return err
	}

	s.publishTrade(ctx, models.TradeEvent{
		TradeID:   tradeID.String(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Symbol:    quote.Symbol,
		Shares:    -shares,
		Price:     quote.Price.String(),
		Side:      "sell",
	})

	return nil
}
