package handlers

import (
	"context"
	"net/http"

	"stocktrader/internal/logger"
)

// SessionClearer destroys the request's session.
type SessionClearer interface {
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// NewLogoutHandler returns an HTTP handler that unconditionally destroys
// the session and redirects to the login page.
func NewLogoutHandler(sessions SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Clear(r.Context(), w, r); err != nil {
			logger.Log.Errorw("failed to clear session", "err", err)
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
