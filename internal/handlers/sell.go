package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"stocktrader/internal/logger"
	"stocktrader/internal/middlewares"
	"stocktrader/internal/services"
	"stocktrader/internal/web"
)

// Seller defines the interface that the trade service must implement.
type Seller interface {
	Sell(ctx context.Context, userID uuid.UUID, symbol string, shares int64) error
}

// HeldSymbolsReader lists the symbols the user currently holds, for the
// sell form.
type HeldSymbolsReader interface {
	HeldSymbols(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// SellViewData is the data for the sell form.
type SellViewData struct {
	Symbols []string
}

// NewSellHandler returns an HTTP handler for selling shares. The held
// position is re-read before the sell so it can never go negative.
func NewSellHandler(svc Seller, portfolio HeldSymbolsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if r.Method == http.MethodGet {
			symbols, err := portfolio.HeldSymbols(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to list held symbols", "user_id", userID, "err", err)
				web.Apology(w, "internal server error", http.StatusInternalServerError)
				return
			}
			web.Render(w, "sell.html", SellViewData{Symbols: symbols}, http.StatusOK)
			return
		}

		symbol := strings.ToUpper(strings.TrimSpace(r.FormValue("symbol")))
		if symbol == "" {
			web.Apology(w, "must provide symbol", http.StatusForbidden)
			return
		}

		shares, err := strconv.ParseInt(r.FormValue("shares"), 10, 64)
		if err != nil || shares <= 0 {
			web.Apology(w, "must provide a positive number of shares", http.StatusForbidden)
			return
		}

		if err := svc.Sell(ctx, userID, symbol, shares); err != nil {
			switch {
			case errors.Is(err, services.ErrTooManyShares):
				web.Apology(w, "too many shares", http.StatusForbidden)
			case errors.Is(err, services.ErrUnknownSymbol):
				web.Apology(w, "invalid symbol", http.StatusForbidden)
			default:
				logger.Log.Errorw("sell failed", "user_id", userID, "symbol", symbol, "err", err)
				web.Apology(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
