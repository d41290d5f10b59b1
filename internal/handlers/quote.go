package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"stocktrader/internal/logger"
	"stocktrader/internal/models"
	"stocktrader/internal/services"
	"stocktrader/internal/web"
)

// QuoteLookuper defines the interface that the quote service must implement.
type QuoteLookuper interface {
	Lookup(ctx context.Context, symbol string) (*models.Quote, error)
}

// NewQuoteHandler returns an HTTP handler for quote lookup. GET renders
// the form; POST resolves the symbol. An unrecognized symbol and a
// provider failure both yield the same 400 apology.
func NewQuoteHandler(svc QuoteLookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			web.Render(w, "quote.html", nil, http.StatusOK)
			return
		}

		symbol := strings.ToUpper(strings.TrimSpace(r.FormValue("symbol")))
		if symbol == "" {
			web.Apology(w, "invalid symbol", http.StatusBadRequest)
			return
		}

		quote, err := svc.Lookup(r.Context(), symbol)
		if err != nil {
			if errors.Is(err, services.ErrUnknownSymbol) {
				web.Apology(w, "invalid symbol", http.StatusBadRequest)
				return
			}
			logger.Log.Errorw("quote lookup failed", "symbol", symbol, "err", err)
			web.Apology(w, "internal server error", http.StatusInternalServerError)
			return
		}

		web.Render(w, "quoted.html", quote, http.StatusOK)
	}
}
