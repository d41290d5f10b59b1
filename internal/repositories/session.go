package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stocktrader/internal/logger"
)

// ErrSessionNotFound is returned when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores the token -> user id mapping in Redis with a TTL.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Save stores a session for the given user.
func (r *SessionRepository) Save(ctx context.Context, token string, userID uuid.UUID) error {
	key := sessionKey(token)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow("session save",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Get resolves a token to a user id. Returns ErrSessionNotFound for
// unknown or expired tokens.
func (r *SessionRepository) Get(ctx context.Context, token string) (uuid.UUID, error) {
	key := sessionKey(token)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("session lookup",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// Delete destroys a session. Deleting a non-existent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	key := sessionKey(token)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}
