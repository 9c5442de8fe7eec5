package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"github.com/Srivastav4327/RentMate/internal/models"
)

type RentalStore struct {
	mu    sync.RWMutex
	items map[string]models.Rental
}

func NewRentalStore(seed ...models.Rental) *RentalStore {
	s := &RentalStore{items: make(map[string]models.Rental)}
	for _, r := range seed {
		s.items[r.ID] = cloneRental(r)
	}
	return s
}

func (s *RentalStore) Create(ctx context.Context, r *models.Rental) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[r.ID]; ok {
		return fmt.Errorf("rental %s already exists", r.ID)
	}
	s.items[r.ID] = cloneRental(*r)
	return nil
}

func (s *RentalStore) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	c := cloneRental(r)
	return &c, nil
}

// ListByUser returns the user's rentals on the given side, newest first.
func (s *RentalStore) ListByUser(ctx context.Context, userID string, role models.RentalRole) ([]models.Rental, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if role != models.RoleRenter && role != models.RoleOwner {
		return nil, fmt.Errorf("unknown rental role %q", role)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Rental{}
	for _, r := range s.items {
		if (role == models.RoleRenter && r.RenterID == userID) || (role == models.RoleOwner && r.OwnerID == userID) {
			out = append(out, cloneRental(r))
		}
	}
	slices.SortFunc(out, func(a, b models.Rental) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *RentalStore) UpdateStatus(ctx context.Context, id string, from, to models.RentalStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return models.ErrRentalNotFound
	}
	if r.Status != from {
		return models.ErrStaleRecord
	}
	r.Status = to
	r.UpdatedAt = time.Now().UTC()
	s.items[id] = r
	return nil
}

func (s *RentalStore) UpdatePayment(ctx context.Context, id string, from, to models.PaymentStatus, paymentID *string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return models.ErrRentalNotFound
	}
	if r.PaymentStatus != from {
		return models.ErrStaleRecord
	}
	r.PaymentStatus = to
	if paymentID != nil {
		p := *paymentID
		r.PaymentID = &p
	}
	r.UpdatedAt = time.Now().UTC()
	s.items[id] = r
	return nil
}

func cloneRental(r models.Rental) models.Rental {
	if r.SecurityDeposit != nil {
		d := *r.SecurityDeposit
		r.SecurityDeposit = &d
	}
	if r.PaymentID != nil {
		p := *r.PaymentID
		r.PaymentID = &p
	}
	return r
}
