package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"stocktrader/internal/logger"
	"stocktrader/internal/middlewares"
	"stocktrader/internal/models"
	"stocktrader/internal/web"
)

// HistoryReader lists all trade rows for a user.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.TradeDB, error)
}

// HistoryViewData is the data for the history page.
type HistoryViewData struct {
	Trades []models.TradeDB
}

// NewHistoryHandler returns an HTTP handler rendering the full trade
// history, oldest first.
func NewHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		trades, err := svc.History(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list history", "user_id", userID, "err", err)
			web.Apology(w, "internal server error", http.StatusInternalServerError)
			return
		}

		web.Render(w, "history.html", HistoryViewData{Trades: trades}, http.StatusOK)
	}
}
