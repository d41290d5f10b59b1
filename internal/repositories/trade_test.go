package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTradePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		trade_id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		symbol VARCHAR(16) NOT NULL,
		shares BIGINT NOT NULL,
		price NUMERIC(18,4) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestTradeWriteRepository_Save(t *testing.T) {
	db, teardown := setupTradePostgresContainer(t)
	defer teardown()

	repo := NewTradeWriteRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	tradeID, err := repo.Save(ctx, userID, "AAPL", 5, decimal.RequireFromString("150.25"))
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tradeID)

	var row struct {
		Symbol string          `db:"symbol"`
		Shares int64           `db:"shares"`
		Price  decimal.Decimal `db:"price"`
	}
	err = db.Get(&row, "SELECT symbol, shares, price FROM trades WHERE trade_id=$1", tradeID)
	assert.NoError(t, err)
	assert.Equal(t, "AAPL", row.Symbol)
	assert.Equal(t, int64(5), row.Shares)
	assert.True(t, row.Price.Equal(decimal.RequireFromString("150.25")))
}

func TestTradeReadRepository_SumShares(t *testing.T) {
	db, teardown := setupTradePostgresContainer(t)
	defer teardown()

	writeRepo := NewTradeWriteRepository(db, nil)
	readRepo := NewTradeReadRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()
	price := decimal.RequireFromString("100.00")

	_, err := writeRepo.Save(ctx, userID, "AAPL", 10, price)
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, userID, "AAPL", -3, price)
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, userID, "NFLX", 2, price)
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, uuid.New(), "AAPL", 100, price)
	require.NoError(t, err)

	shares, err := readRepo.SumShares(ctx, userID, "AAPL")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), shares)

	shares, err = readRepo.SumShares(ctx, userID, "GONE")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), shares)
}

func TestTradeReadRepository_Holdings(t *testing.T) {
	db, teardown := setupTradePostgresContainer(t)
	defer teardown()

	writeRepo := NewTradeWriteRepository(db, nil)
	readRepo := NewTradeReadRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()
	price := decimal.RequireFromString("100.00")

	_, err := writeRepo.Save(ctx, userID, "NFLX", 2, price)
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, userID, "AAPL", 10, price)
	require.NoError(t, err)
	// fully sold out position must not appear
	_, err = writeRepo.Save(ctx, userID, "MSFT", 4, price)
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, userID, "MSFT", -4, price)
	require.NoError(t, err)

	holdings, err := readRepo.Holdings(ctx, userID)
	assert.NoError(t, err)
	require.Len(t, holdings, 2)
	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.Equal(t, int64(10), holdings[0].Shares)
	assert.Equal(t, "NFLX", holdings[1].Symbol)
	assert.Equal(t, int64(2), holdings[1].Shares)
}

func TestTradeReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupTradePostgresContainer(t)
	defer teardown()

	writeRepo := NewTradeWriteRepository(db, nil)
	readRepo := NewTradeReadRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	first, err := writeRepo.Save(ctx, userID, "AAPL", 5, decimal.RequireFromString("150.00"))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := writeRepo.Save(ctx, userID, "AAPL", -2, decimal.RequireFromString("160.00"))
	require.NoError(t, err)

	trades, err := readRepo.ListByUser(ctx, userID)
	assert.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, first, trades[0].TradeID)
	assert.Equal(t, second, trades[1].TradeID)
	assert.Equal(t, int64(-2), trades[1].Shares)

	trades, err = readRepo.ListByUser(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, trades)
}
