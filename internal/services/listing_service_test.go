package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/rent/filter"
	"github.com/Srivastav4327/RentMate/internal/repositories/memory"
)

func validDraft() models.ListingDraft {
	return models.ListingDraft{
		Title:       "Yamaha Acoustic Guitar",
		Description: "Full size guitar with a soft case",
		Category:    "instruments",
		Price:       250,
		Location:    "Kothrud",
		City:        "Pune",
		State:       "Maharashtra",
		Images:      []string{"https://example.com/guitar.jpg"},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateListingValidation(t *testing.T) {
	svc := NewListingService(memory.NewListingStore())
	owner := user("user1", "Owner")

	cases := []struct {
		name   string
		mutate func(*models.ListingDraft)
		fields []string
	}{
		{"empty draft", func(d *models.ListingDraft) { *d = models.ListingDraft{} }, []string{"title", "description", "category", "price", "location", "city", "images"}},
		{"unknown category", func(d *models.ListingDraft) { d.Category = "weapons" }, []string{"category"}},
		{"zero price", func(d *models.ListingDraft) { d.Price = 0 }, []string{"price"}},
		{"zero deposit", func(d *models.ListingDraft) { d.Deposit = floatPtr(0) }, []string{"deposit"}},
		{"blank image", func(d *models.ListingDraft) { d.Images = []string{""} }, []string{"images[0]"}},
		{"whitespace title", func(d *models.ListingDraft) { d.Title = "   " }, []string{"title"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			_, err := svc.Create(context.Background(), owner, d)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(ve.Fields) != len(tc.fields) {
				t.Fatalf("expected fields %v, got %v", tc.fields, ve.Fields)
			}
			for _, f := range tc.fields {
				if ve.Fields[f] == "" {
					t.Fatalf("missing message for %s in %v", f, ve.Fields)
				}
			}
		})
	}
}

func TestCreateListing(t *testing.T) {
	store := memory.NewListingStore()
	svc := NewListingService(store)
	d := validDraft()
	d.Deposit = floatPtr(1000)

	l, err := svc.Create(context.Background(), user("user1", "Owner"), d)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == "" || l.OwnerID != "user1" || l.OwnerName != "Owner" || l.Status != models.ListingAvailable {
		t.Fatalf("unexpected listing %+v", l)
	}
	stored, _ := store.GetByID(context.Background(), l.ID)
	if stored == nil || *stored.Deposit != 1000 {
		t.Fatalf("listing not stored: %+v", stored)
	}

	if _, err := svc.Create(context.Background(), models.Identity{Resolved: true}, d); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected anonymous create to be forbidden, got %v", err)
	}
}

func TestListAndFeatured(t *testing.T) {
	svc := NewListingService(memory.NewListingStore(memory.SeedListings()...))
	ctx := context.Background()

	got, err := svc.List(ctx, filter.Criteria{SearchText: "camera"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "item1" {
		t.Fatalf("unexpected search result %v", got)
	}
	all, err := svc.List(ctx, filter.Criteria{})
	if err != nil || len(all) != 5 {
		t.Fatalf("expected all 5 listings for empty criteria, got %d, %v", len(all), err)
	}

	featured, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured listings, got %d", len(featured))
	}
}

func TestUpdateListing(t *testing.T) {
	ctx := context.Background()
	svc := NewListingService(memory.NewListingStore(memory.SeedListings()...))
	price := 450.0
	upd := models.ListingUpdate{Price: &price}

	if _, err := svc.Update(ctx, user("user123", "Amit"), "item2", upd); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected non-owner update to be forbidden, got %v", err)
	}
	l, err := svc.Update(ctx, user("user789", "Priya"), "item2", upd)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if l.Price != 450 || l.Title != "PlayStation 5 Console with 2 Controllers" {
		t.Fatalf("unexpected listing after update %+v", l)
	}

	unavailable := models.ListingUnavailable
	if _, err := svc.Update(ctx, admin(), "item2", models.ListingUpdate{Status: &unavailable}); err != nil {
		t.Fatalf("admin update: %v", err)
	}

	rented := models.ListingRented
	var ve *ValidationError
	if _, err := svc.Update(ctx, user("user789", "Priya"), "item2", models.ListingUpdate{Status: &rented}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for manual rented status, got %v", err)
	}
	if _, err := svc.Update(ctx, user("user789", "Priya"), "item2", models.ListingUpdate{}); !errors.As(err, &ve) {
		t.Fatalf("expected validation error for empty update, got %v", err)
	}
	if _, err := svc.Update(ctx, admin(), "missing", upd); !errors.Is(err, models.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestRemoveListing(t *testing.T) {
	ctx := context.Background()
	svc := NewListingService(memory.NewListingStore(memory.SeedListings()...))

	if err := svc.Remove(ctx, user("user123", "Amit"), "item4"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.Remove(ctx, user("user345", "Arun"), "item4"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if l, err := svc.Get(ctx, "item4"); err != nil || l != nil {
		t.Fatalf("expected removed listing to be gone, got %v %v", l, err)
	}
}

// racingListings marks the listing rented right before the next write lands,
// the way a concurrent rental activation would.
type racingListings struct {
	*memory.ListingStore
	raced bool
}

func (r *racingListings) race(ctx context.Context, id string) {
	if !r.raced {
		r.raced = true
		_ = r.ListingStore.SetStatus(ctx, id, models.ListingRented)
	}
}

func (r *racingListings) Update(ctx context.Context, l *models.Listing) error {
	r.race(ctx, l.ID)
	return r.ListingStore.Update(ctx, l)
}

func (r *racingListings) SwapStatus(ctx context.Context, id string, from, to models.ListingStatus) error {
	r.race(ctx, id)
	return r.ListingStore.SwapStatus(ctx, id, from, to)
}

func TestUpdateListingKeepsConcurrentRentedStatus(t *testing.T) {
	title := "PS5 with two controllers"
	unavailable := models.ListingUnavailable

	cases := []struct {
		name    string
		upd     models.ListingUpdate
		wantErr error
	}{
		{"field edit", models.ListingUpdate{Title: &title}, nil},
		{"status edit", models.ListingUpdate{Status: &unavailable}, models.ErrStaleRecord},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := &racingListings{ListingStore: memory.NewListingStore(memory.SeedListings()...)}
			svc := NewListingService(store)

			_, err := svc.Update(ctx, user("user789", "Priya"), "item2", tc.upd)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("Update: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			got, _ := store.GetByID(ctx, "item2")
			if got.Status != models.ListingRented {
				t.Fatalf("rented status overwritten with %s", got.Status)
			}
		})
	}
}
