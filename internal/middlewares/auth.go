package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"stocktrader/internal/logger"
)

// SessionResolver resolves a request to an authenticated user id.
type SessionResolver interface {
	UserID(ctx context.Context, r *http.Request) (uuid.UUID, error)
}

type userIDKeyType struct{}

var userIDKey = userIDKeyType{}

// AuthMiddleware returns a middleware that requires a valid session.
// Requests without one are redirected to the login page with no state
// mutation.
func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, err := resolver.UserID(ctx, r)
			if err != nil {
				logger.Log.Infow("unauthenticated request", "uri", r.RequestURI, "err", err)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

// WithUserID returns a context carrying the given user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id stored by
// AuthMiddleware. The second value is false when no user is present.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
