package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/rent/filter"
)

type ListingService struct {
	Listings ListingStore

	validate *validator.Validate
	now      func() time.Time
}

func NewListingService(listings ListingStore) *ListingService {
	return &ListingService{
		Listings: listings,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *ListingService) Create(ctx context.Context, owner models.Identity, draft models.ListingDraft) (*models.Listing, error) {
	if !owner.Authenticated {
		return nil, ErrForbidden
	}
	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Location = strings.TrimSpace(draft.Location)
	draft.City = strings.TrimSpace(draft.City)
	draft.State = strings.TrimSpace(draft.State)

	if err := validateStruct(s.validate, draft); err != nil {
		return nil, err
	}

	now := s.now()
	l := &models.Listing{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Price:       draft.Price,
		Deposit:     draft.Deposit,
		Location:    draft.Location,
		City:        draft.City,
		State:       draft.State,
		Images:      models.StringList(draft.Images),
		OwnerID:     owner.ID,
		OwnerName:   owner.DisplayName,
		Status:      models.ListingAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Listings.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return l, nil
}

// Get returns nil, nil when the listing does not exist.
func (s *ListingService) Get(ctx context.Context, id string) (*models.Listing, error) {
	l, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}
	return l, nil
}

func (s *ListingService) List(ctx context.Context, c filter.Criteria) ([]models.Listing, error) {
	all, err := s.Listings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	if c.IsEmpty() {
		return all, nil
	}
	return filter.Apply(all, c), nil
}

func (s *ListingService) Featured(ctx context.Context) ([]models.Listing, error) {
	all, err := s.Listings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	out := make([]models.Listing, 0)
	for _, l := range all {
		if l.Featured {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *ListingService) Update(ctx context.Context, actor models.Identity, id string, upd models.ListingUpdate) (*models.Listing, error) {
	if upd.IsEmpty() {
		return nil, invalid("body", "no fields to update")
	}
	if err := validateStruct(s.validate, upd); err != nil {
		return nil, err
	}
	if upd.Status != nil && *upd.Status == models.ListingRented {
		return nil, invalid("status", "is set by the rental lifecycle")
	}

	l, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if upd.Status != nil && l.Status == models.ListingRented {
		return nil, &PreconditionError{Reason: "listing is currently rented"}
	}

	if upd.Status != nil && *upd.Status != l.Status {
		if err := s.Listings.SwapStatus(ctx, id, l.Status, *upd.Status); err != nil {
			return nil, fmt.Errorf("update listing %s status: %w", id, err)
		}
	}
	upd.ApplyTo(l)
	l.UpdatedAt = s.now()
	if err := s.Listings.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("update listing %s: %w", id, err)
	}
	return l, nil
}

// Remove hides the listing from every listing query.
func (s *ListingService) Remove(ctx context.Context, actor models.Identity, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.Listings.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("remove listing %s: %w", id, err)
	}
	return nil
}

func (s *ListingService) owned(ctx context.Context, actor models.Identity, id string) (*models.Listing, error) {
	l, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}
	if l == nil {
		return nil, models.ErrListingNotFound
	}
	if !actor.Authenticated || (l.OwnerID != actor.ID && !actor.IsAdmin()) {
		return nil, ErrForbidden
	}
	return l, nil
}
