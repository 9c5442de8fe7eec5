package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type SessionStore struct {
	mu    sync.Mutex
	items map[string]models.Session
	now   func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[string]models.Session), now: time.Now}
}

func (s *SessionStore) Save(ctx context.Context, sess models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !sess.ExpiresAt.After(s.now()) {
		return fmt.Errorf("session for %s already expired", sess.UserID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sess.RefreshToken] = sess
	return nil
}

// Take removes and returns the session. Unknown or expired sessions yield nil.
func (s *SessionStore) Take(ctx context.Context, refreshToken string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[refreshToken]
	if !ok {
		return nil, nil
	}
	delete(s.items, refreshToken)
	if !sess.ExpiresAt.After(s.now()) {
		return nil, nil
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, refreshToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, refreshToken)
	return nil
}
