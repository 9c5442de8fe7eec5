package memory

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type UserStore struct {
	mu    sync.RWMutex
	items map[string]models.User
}

func NewUserStore(seed ...models.User) *UserStore {
	s := &UserStore{items: make(map[string]models.User)}
	for _, u := range seed {
		s.items[u.ID] = cloneUser(u)
	}
	return s
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.ErrDuplicateEmail
		}
	}
	s.items[u.ID] = cloneUser(*u)
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	c := cloneUser(u)
	return &c, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if strings.EqualFold(u.Email, email) {
			c := cloneUser(u)
			return &c, nil
		}
	}
	return nil, nil
}

// List returns users ordered by creation time, then id.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.items))
	for _, u := range s.items {
		out = append(out, cloneUser(u))
	}
	slices.SortFunc(out, func(a, b models.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *UserStore) SetRole(ctx context.Context, id string, role models.Role) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.items[id]
	if !ok {
		return models.ErrUserNotFound
	}
	u.Role = role
	s.items[id] = u
	return nil
}

func cloneUser(u models.User) models.User {
	if u.PhotoURL != nil {
		p := *u.PhotoURL
		u.PhotoURL = &p
	}
	return u
}
