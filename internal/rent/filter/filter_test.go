package filter

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/Srivastav4327/RentMate/internal/models"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		{ID: "item1", Title: "Sony Alpha A7III Mirrorless Camera", Description: "Full-frame body with kit lens", Category: "electronics", Price: 1200, City: "Mumbai", OwnerID: "user456"},
		{ID: "item2", Title: "PlayStation 5 Console", Description: "Two controllers and three games", Category: "gaming", Price: 500, City: "Bangalore", OwnerID: "user789"},
		{ID: "item3", Title: "MacBook Pro 16", Description: "M2 Pro, ships with charger", Category: "electronics", Price: 1500, City: "Delhi", OwnerID: "user123"},
		{ID: "item4", Title: "Study Desk", Description: "Ergonomic desk and chair", Category: "furniture", Price: 300, City: "Chennai", OwnerID: "user345"},
		{ID: "item5", Title: "UPSC Study Material", Description: "Notes plus a CAMERA-ready scan set", Category: "books", Price: 200, City: "mumbai", OwnerID: "user456"},
	}
}

func ids(ls []models.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func price(v float64) *float64 { return &v }

func TestApply(t *testing.T) {
	cases := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"empty criteria", Criteria{}, []string{"item1", "item2", "item3", "item4", "item5"}},
		{"category", Criteria{Category: "electronics"}, []string{"item1", "item3"}},
		{"category is exact", Criteria{Category: "Electronics"}, []string{}},
		{"city ignores case", Criteria{City: "MUMBAI"}, []string{"item1", "item5"}},
		{"search title or description", Criteria{SearchText: "camera"}, []string{"item1", "item5"}},
		{"search desk", Criteria{SearchText: "Desk"}, []string{"item4"}},
		{"max price inclusive", Criteria{MaxPrice: price(500)}, []string{"item2", "item4", "item5"}},
		{"owner", Criteria{OwnerID: "user456"}, []string{"item1", "item5"}},
		{"combined", Criteria{City: "mumbai", SearchText: "camera", MaxPrice: price(1000)}, []string{"item5"}},
		{"no match", Criteria{Category: "tools"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(sampleListings(), tc.criteria))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestApplyMaxPriceIdempotent(t *testing.T) {
	for _, p := range []float64{0, 200, 299.99, 300, 1200, 5000} {
		c := Criteria{MaxPrice: price(p)}
		once := Apply(sampleListings(), c)
		for _, l := range once {
			if l.Price > p {
				t.Fatalf("listing %s priced %v exceeds %v", l.ID, l.Price, p)
			}
		}
		twice := Apply(once, c)
		if !reflect.DeepEqual(ids(once), ids(twice)) {
			t.Fatalf("filtering twice changed result: %v vs %v", ids(once), ids(twice))
		}
	}
}

func TestApplySearchCamera(t *testing.T) {
	listings := []models.Listing{
		{ID: "a", Title: "Sony Alpha A7III Mirrorless Camera"},
		{ID: "b", Title: "Study Desk"},
	}
	got := ids(Apply(listings, Criteria{SearchText: "camera"}))
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected only the camera, got %v", got)
	}
}

func TestCriteriaFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("category", "gaming")
	q.Set("city", " Pune ")
	q.Set("search", "ps5")
	q.Set("maxPrice", "750")
	q.Set("ownerId", "user1")
	c, err := CriteriaFromQuery(q)
	if err != nil {
		t.Fatalf("CriteriaFromQuery: %v", err)
	}
	if c.Category != "gaming" || c.City != "Pune" || c.SearchText != "ps5" || c.OwnerID != "user1" {
		t.Fatalf("unexpected criteria %+v", c)
	}
	if c.MaxPrice == nil || *c.MaxPrice != 750 {
		t.Fatalf("expected max price 750, got %v", c.MaxPrice)
	}

	if c, err := CriteriaFromQuery(url.Values{}); err != nil || !c.IsEmpty() {
		t.Fatalf("expected empty criteria, got %+v, %v", c, err)
	}

	bad := url.Values{}
	bad.Set("maxPrice", "cheap")
	if _, err := CriteriaFromQuery(bad); err == nil {
		t.Fatal("expected error for non-numeric maxPrice")
	}
}
