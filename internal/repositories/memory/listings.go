// Package memory holds in-process stores used by tests and the memory driver.
package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type ListingStore struct {
	mu    sync.RWMutex
	items map[string]models.Listing
	order []string
}

func NewListingStore(seed ...models.Listing) *ListingStore {
	s := &ListingStore{items: make(map[string]models.Listing)}
	for _, l := range seed {
		s.items[l.ID] = cloneListing(l)
		s.order = append(s.order, l.ID)
	}
	return s
}

// List returns live listings newest first.
func (s *ListingStore) List(ctx context.Context) ([]models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Listing, 0, len(s.order))
	for _, id := range s.order {
		l := s.items[id]
		if l.DeletedAt != nil {
			continue
		}
		out = append(out, cloneListing(l))
	}
	slices.SortStableFunc(out, func(a, b models.Listing) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (s *ListingStore) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.items[id]
	if !ok || l.DeletedAt != nil {
		return nil, nil
	}
	c := cloneListing(l)
	return &c, nil
}

func (s *ListingStore) Create(ctx context.Context, l *models.Listing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[l.ID]; !ok {
		s.order = append(s.order, l.ID)
	}
	s.items[l.ID] = cloneListing(*l)
	return nil
}

// Update keeps owner, creation time and status from the stored copy.
func (s *ListingStore) Update(ctx context.Context, l *models.Listing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.items[l.ID]
	if !ok || cur.DeletedAt != nil {
		return models.ErrListingNotFound
	}
	next := cloneListing(*l)
	next.OwnerID = cur.OwnerID
	next.CreatedAt = cur.CreatedAt
	next.Status = cur.Status
	s.items[l.ID] = next
	return nil
}

func (s *ListingStore) SetStatus(ctx context.Context, id string, status models.ListingStatus) error {
	return s.mutate(ctx, id, func(l *models.Listing) {
		l.Status = status
		l.UpdatedAt = time.Now().UTC()
	})
}

// SwapStatus moves the listing to status "to" only while it is still "from".
func (s *ListingStore) SwapStatus(ctx context.Context, id string, from, to models.ListingStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.items[id]
	if !ok || l.DeletedAt != nil {
		return models.ErrListingNotFound
	}
	if l.Status != from {
		return models.ErrStaleRecord
	}
	l.Status = to
	l.UpdatedAt = time.Now().UTC()
	s.items[id] = l
	return nil
}

func (s *ListingStore) SoftDelete(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(l *models.Listing) {
		now := time.Now().UTC()
		l.DeletedAt = &now
		l.UpdatedAt = now
	})
}

func (s *ListingStore) mutate(ctx context.Context, id string, fn func(*models.Listing)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.items[id]
	if !ok || l.DeletedAt != nil {
		return models.ErrListingNotFound
	}
	fn(&l)
	s.items[id] = l
	return nil
}

func cloneListing(l models.Listing) models.Listing {
	if l.Images != nil {
		l.Images = append(models.StringList(nil), l.Images...)
	}
	if l.Deposit != nil {
		d := *l.Deposit
		l.Deposit = &d
	}
	if l.OwnerPhoto != nil {
		p := *l.OwnerPhoto
		l.OwnerPhoto = &p
	}
	if l.DeletedAt != nil {
		t := *l.DeletedAt
		l.DeletedAt = &t
	}
	return l
}
