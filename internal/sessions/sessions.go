package sessions

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session_id"

// ErrNoSession is returned when the request carries no session cookie.
var ErrNoSession = errors.New("no session cookie")

// TokenStore persists the server-side token -> user id mapping.
type TokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// Sessions creates, resolves, and destroys cookie-carried sessions. The
// cookie holds only an opaque token; the authenticated user id lives in
// the store.
type Sessions struct {
	store TokenStore
}

// New creates a new Sessions instance.
func New(store TokenStore) *Sessions {
	return &Sessions{store: store}
}

// Create starts a session for userID and sets the session cookie.
func (s *Sessions) Create(ctx context.Context, w http.ResponseWriter, userID uuid.UUID) error {
	token := uuid.NewString()

	if err := s.store.Save(ctx, token, userID); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// GetTokenFromRequest extracts the session token from the request cookie.
func (s *Sessions) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}
	return cookie.Value, nil
}

// UserID resolves the request's session to an authenticated user id.
func (s *Sessions) UserID(ctx context.Context, r *http.Request) (uuid.UUID, error) {
	token, err := s.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	return s.store.Get(ctx, token)
}

// Clear destroys the request's session, if any, and expires the cookie.
// Clearing a request without a session is not an error.
func (s *Sessions) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := s.GetTokenFromRequest(ctx, r)
	if err == nil {
		if err := s.store.Delete(ctx, token); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
