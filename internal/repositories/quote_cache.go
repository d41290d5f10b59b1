package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
)

// QuoteCacheRepository caches normalized quotes in Redis so repeated
// lookups within the TTL do not hit the external provider.
type QuoteCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewQuoteCacheRepository(client *redis.Client, expiration time.Duration) *QuoteCacheRepository {
	return &QuoteCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func quoteKey(symbol string) string {
	return fmt.Sprintf("quote:%s", symbol)
}

// Get fetches a cached quote for the symbol.
func (r *QuoteCacheRepository) Get(ctx context.Context, symbol string) (*models.Quote, error) {
	key := quoteKey(symbol)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("quote cache lookup",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("quote not found in cache for %s", symbol)
		}
		return nil, err
	}

	var quote models.Quote
	if err := json.Unmarshal([]byte(val), &quote); err != nil {
		logger.Log.Infow("quote cache decode",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("quote cache hit",
		"key", key,
		"result", quote,
	)

	return &quote, nil
}

// Set caches a quote with the configured expiration.
func (r *QuoteCacheRepository) Set(ctx context.Context, quote *models.Quote) error {
	key := quoteKey(quote.Symbol)

	data, err := json.Marshal(quote)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("quote cache set",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
