package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"stocktrader/internal/logger"
	"stocktrader/internal/services"
	"stocktrader/internal/web"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (uuid.UUID, error)
}

// SessionStarter manages sessions for the login handler.
type SessionStarter interface {
	Create(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) error
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// NewLoginHandler returns an HTTP handler for user login. Any existing
// session is cleared first, even on GET. Unknown usernames and wrong
// passwords produce the same generic message.
func NewLoginHandler(svc Loginer, sessions SessionStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := sessions.Clear(ctx, w, r); err != nil {
			logger.Log.Errorw("failed to clear session", "err", err)
		}

		if r.Method == http.MethodGet {
			web.Render(w, "login.html", nil, http.StatusOK)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		switch {
		case username == "":
			web.Apology(w, "must provide username", http.StatusForbidden)
			return
		case password == "":
			web.Apology(w, "must provide password", http.StatusForbidden)
			return
		}

		userID, err := svc.Login(ctx, username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist),
				errors.Is(err, services.ErrInvalidCredentials):
				web.Apology(w, "invalid username and/or password", http.StatusForbidden)
			default:
				logger.Log.Errorw("login failed", "err", err)
				web.Apology(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		if err := sessions.Create(ctx, w, userID); err != nil {
			logger.Log.Errorw("failed to create session", "err", err)
			web.Apology(w, "internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
