package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
)

// TradeWriteRepository appends trade records. Rows are never updated or
// deleted.
type TradeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTradeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TradeWriteRepository {
	return &TradeWriteRepository{db: db, txGetter: txGetter}
}

func (r *TradeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one trade row. Shares is signed: positive for a buy,
// negative for a sell. Returns the generated trade id.
func (r *TradeWriteRepository) Save(ctx context.Context, userID uuid.UUID, symbol string, shares int64, price decimal.Decimal) (uuid.UUID, error) {
	const query = `
		INSERT INTO trades (trade_id, user_id, symbol, shares, price, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	tradeID := uuid.New()
	args := []any{tradeID, userID, symbol, shares, price}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("trade insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return tradeID, err
}

// TradeReadRepository reads trade records and derived positions.
type TradeReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTradeReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TradeReadRepository {
	return &TradeReadRepository{db: db, txGetter: txGetter}
}

func (r *TradeReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SumShares returns the current position for one user and symbol: the sum
// of signed share counts over all trade rows.
func (r *TradeReadRepository) SumShares(ctx context.Context, userID uuid.UUID, symbol string) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(shares), 0)
		FROM trades
		WHERE user_id = $1 AND symbol = $2
	`

	var shares int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &shares, query, userID, symbol)

	logger.Log.Infow("position query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, symbol},
		"result", shares,
		"error", err,
	)

	return shares, err
}

// Holdings returns all symbols the user currently holds (summed shares > 0),
// ordered by symbol.
func (r *TradeReadRepository) Holdings(ctx context.Context, userID uuid.UUID) ([]models.Holding, error) {
	const query = `
		SELECT symbol, SUM(shares) AS shares
		FROM trades
		WHERE user_id = $1
		GROUP BY symbol
		HAVING SUM(shares) > 0
		ORDER BY symbol
	`

	var holdings []models.Holding
	err := sqlx.SelectContext(ctx, r.executor(ctx), &holdings, query, userID)

	logger.Log.Infow("holdings query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(holdings),
		"error", err,
	)

	return holdings, err
}

// ListByUser returns all trade rows for the user, oldest first.
func (r *TradeReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error) {
	const query = `
		SELECT trade_id, user_id, symbol, shares, price, created_at
		FROM trades
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	var trades []models.TradeDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &trades, query, userID)

	logger.Log.Infow("history query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(trades),
		"error", err,
	)

	return trades, err
}
