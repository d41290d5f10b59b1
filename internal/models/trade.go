package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeDB represents one immutable buy or sell record in the database.
// Positive Shares means a buy, negative means a sell. Holdings are never
// stored directly: the current position per symbol is the sum of Shares
// over all rows for that user and symbol.
type TradeDB struct {
	TradeID   uuid.UUID       `json:"trade_id" db:"trade_id"`     // Primary key
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`       // Owning user
	Symbol    string          `json:"symbol" db:"symbol"`         // Ticker symbol
	Shares    int64           `json:"shares" db:"shares"`         // Signed share count
	Price     decimal.Decimal `json:"price" db:"price"`           // Execution price per share
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Execution timestamp
}

// Holding is a derived position: the summed share count for one symbol.
type Holding struct {
	Symbol string `db:"symbol"`
	Shares int64  `db:"shares"`
}

// TradeEvent is the message published to Kafka after a completed trade.
type TradeEvent struct {
	TradeID   string `json:"trade_id"`  // Unique identifier of the trade
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds) of execution
	UserID    string `json:"user_id"`   // Identifier of the trading user
	Symbol    string `json:"symbol"`    // Ticker symbol
	Shares    int64  `json:"shares"`    // Signed share count
	Price     string `json:"price"`     // Execution price per share
	Side      string `json:"side"`      // "buy" or "sell"
}
