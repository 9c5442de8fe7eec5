package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Srivastav4327/RentMate/internal/models"
)

// SessionRepository keeps refresh sessions in Redis, keyed by refresh token.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(refreshToken string) string {
	return fmt.Sprintf("session:%s", refreshToken)
}

func (r *SessionRepository) Save(ctx context.Context, s models.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session for %s already expired", s.UserID)
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, sessionKey(s.RefreshToken), payload, ttl).Err()
}

// Take reads and removes the session in one round trip, so a refresh token
// can be redeemed once.
func (r *SessionRepository) Take(ctx context.Context, refreshToken string) (*models.Session, error) {
	raw, err := r.rdb.GetDel(ctx, sessionKey(refreshToken)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, refreshToken string) error {
	return r.rdb.Del(ctx, sessionKey(refreshToken)).Err()
}
