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

// Buyer defines the interface that the trade service must implement.
type Buyer interface {
	Buy(ctx context.Context, userID uuid.UUID, symbol string, shares int64) error
}

// NewBuyHandler returns an HTTP handler for buying shares. GET renders
// the form; POST validates the fields and executes the buy, which the
// surrounding transaction middleware makes atomic.
func NewBuyHandler(svc Buyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			web.Render(w, "buy.html", nil, http.StatusOK)
			return
		}

		ctx := r.Context()
		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
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

		if err := svc.Buy(ctx, userID, symbol, shares); err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownSymbol):
				web.Apology(w, "invalid symbol", http.StatusForbidden)
			case errors.Is(err, services.ErrInsufficientFunds):
				web.Apology(w, "insufficient funds", http.StatusForbidden)
			default:
				logger.Log.Errorw("buy failed", "user_id", userID, "symbol", symbol, "err", err)
				web.Apology(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
