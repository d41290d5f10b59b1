package handlers

import (
	"context"
	"errors"
	"net/http"

	"stocktrader/internal/logger"
	"stocktrader/internal/services"
	"stocktrader/internal/web"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// GET renders the registration form; POST validates the fields, creates
// the user, and redirects to the login page. No session is created.
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			web.Render(w, "register.html", nil, http.StatusOK)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		confirmation := r.FormValue("confirmation")

		switch {
		case username == "":
			web.Apology(w, "must provide username", http.StatusForbidden)
			return
		case password == "":
			web.Apology(w, "must provide password", http.StatusForbidden)
			return
		case confirmation == "":
			web.Apology(w, "must provide confirmation password", http.StatusForbidden)
			return
		case password != confirmation:
			web.Apology(w, "passwords do not match", http.StatusForbidden)
			return
		}

		if err := svc.Register(r.Context(), username, password); err != nil {
			if errors.Is(err, services.ErrUsernameTaken) {
				web.Apology(w, "username already exists", http.StatusConflict)
				return
			}
			logger.Log.Errorw("registration failed", "err", err)
			web.Apology(w, "internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
