package memory

import (
	"context"
	"sync"
)

type DeviceTokenStore struct {
	mu     sync.RWMutex
	byUser map[string][]string
}

func NewDeviceTokenStore() *DeviceTokenStore {
	return &DeviceTokenStore{byUser: make(map[string][]string)}
}

func (s *DeviceTokenStore) Add(ctx context.Context, userID, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.byUser[userID] {
		if t == token {
			return nil
		}
	}
	s.byUser[userID] = append(s.byUser[userID], token)
	return nil
}

func (s *DeviceTokenStore) TokensFor(ctx context.Context, userID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.byUser[userID]...), nil
}

func (s *DeviceTokenStore) Remove(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for user, tokens := range s.byUser {
		kept := tokens[:0]
		for _, t := range tokens {
			if t != token {
				kept = append(kept, t)
			}
		}
		s.byUser[user] = kept
	}
	return nil
}
