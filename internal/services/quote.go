package services

import (
	"context"
	"errors"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
)

// ErrUnknownSymbol is returned when the provider cannot produce a quote.
// Unrecognized symbols and provider failures collapse into this one kind.
var ErrUnknownSymbol = errors.New("unknown symbol")

// QuoteProvider fetches quotes from the external source.
type QuoteProvider interface {
	Lookup(ctx context.Context, symbol string) (*models.Quote, error)
}

// QuoteCache caches quotes.
type QuoteCache interface {
	Get(ctx context.Context, symbol string) (*models.Quote, error)
	Set(ctx context.Context, quote *models.Quote) error
}

// QuoteService resolves symbols to quotes, consulting the cache before
// the external provider.
type QuoteService struct {
	provider QuoteProvider
	cache    QuoteCache
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(provider QuoteProvider, cache QuoteCache) *QuoteService {
	return &QuoteService{
		provider: provider,
		cache:    cache,
	}
}

// Lookup returns the quote for symbol.
func (s *QuoteService) Lookup(ctx context.Context, symbol string) (*models.Quote, error) {
	if quote, err := s.cache.Get(ctx, symbol); err == nil {
		return quote, nil
	}

	quote, err := s.provider.Lookup(ctx, symbol)
	if err != nil {
		logger.Log.Errorw("quote lookup failed", "symbol", symbol, "error", err)
		return nil, ErrUnknownSymbol
	}

	if err := s.cache.Set(ctx, quote); err != nil {
		logger.Log.Errorw("failed to cache quote", "symbol", symbol, "error", err)
	}

	return quote, nil
}
