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

// PortfolioReader assembles the portfolio view.
type PortfolioReader interface {
	Portfolio(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error)
}

// NewIndexHandler returns an HTTP handler rendering the portfolio: every
// currently held symbol with its live quote and market value, plus cash
// and the grand total.
func NewIndexHandler(svc PortfolioReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		portfolio, err := svc.Portfolio(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to build portfolio", "user_id", userID, "err", err)
			web.Apology(w, "internal server error", http.StatusInternalServerError)
			return
		}

		web.Render(w, "index.html", portfolio, http.StatusOK)
	}
}
