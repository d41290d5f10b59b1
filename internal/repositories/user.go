package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
)

// ErrDuplicateUsername is returned when an insert hits the unique
// constraint on users.username.
var ErrDuplicateUsername = errors.New("username already exists")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if none exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, cash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, cash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user with the default starting cash. The unique
// constraint on username closes the race between two concurrent
// registrations with the same name.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) error {
	const query = `
		INSERT INTO users (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
	`
	args := []any{username, passwordHash}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateUsername
	}

	return err
}

// Debit subtracts amount from the user's cash in a single guarded update.
// Returns sql.ErrNoRows when the balance is insufficient, leaving the row
// untouched.
func (r *UserWriteRepository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE users
		SET cash = cash - $2, updated_at = NOW()
		WHERE user_id = $1 AND cash >= $2
		RETURNING cash
	`

	var cash decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &cash, query, userID, amount)

	logger.Log.Infow("cash debit",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", cash,
		"error", err,
	)

	return cash, err
}

// Credit adds amount to the user's cash.
func (r *UserWriteRepository) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE users
		SET cash = cash + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING cash
	`

	var cash decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &cash, query, userID, amount)

	logger.Log.Infow("cash credit",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", cash,
		"error", err,
	)

	return cash, err
}
