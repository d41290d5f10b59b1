package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
)

// ErrQuoteNotFound is returned when the provider does not recognize the
// symbol or the response cannot be used.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteHTTPFacade fetches quotes from the external provider over HTTP.
type QuoteHTTPFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewQuoteHTTPFacade creates a facade for the given provider base URL and
// API key. A nil client defaults to one with a 10-second timeout.
func NewQuoteHTTPFacade(client *http.Client, baseURL, apiKey string) *QuoteHTTPFacade {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &QuoteHTTPFacade{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// providerQuote mirrors the provider's response body.
type providerQuote struct {
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"companyName"`
	LatestPrice decimal.Decimal `json:"latestPrice"`
}

// Lookup fetches and normalizes a quote for the symbol.
func (f *QuoteHTTPFacade) Lookup(ctx context.Context, symbol string) (*models.Quote, error) {
	reqURL := fmt.Sprintf("%s/stock/%s/quote?token=%s",
		f.baseURL, url.PathEscape(symbol), url.QueryEscape(f.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("quote provider request failed", "symbol", symbol, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("quote provider returned non-OK status",
			"symbol", symbol, "status", resp.StatusCode)
		return nil, ErrQuoteNotFound
	}

	var pq providerQuote
	if err := json.NewDecoder(resp.Body).Decode(&pq); err != nil {
		logger.Log.Errorw("failed to decode quote response", "symbol", symbol, "error", err)
		return nil, ErrQuoteNotFound
	}

	if pq.Symbol == "" {
		return nil, ErrQuoteNotFound
	}

	return &models.Quote{
		Symbol: pq.Symbol,
		Name:   pq.CompanyName,
		Price:  pq.LatestPrice,
	}, nil
}
