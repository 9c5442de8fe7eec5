package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Srivastav4327/RentMate/internal/models"
)

// Criteria narrows a listing set. Empty fields impose no constraint.
type Criteria struct {
	Category   string   `json:"category,omitempty"`
	City       string   `json:"city,omitempty"`
	SearchText string   `json:"search,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
	OwnerID    string   `json:"owner_id,omitempty"`
}

// IsEmpty reports whether c matches every listing.
func (c Criteria) IsEmpty() bool {
	return c.Category == "" && c.City == "" && c.SearchText == "" && c.MaxPrice == nil && c.OwnerID == ""
}

// Apply returns the listings matching every populated criterion, in input order.
func Apply(listings []models.Listing, c Criteria) []models.Listing {
	search := strings.ToLower(c.SearchText)
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if c.Category != "" && l.Category != c.Category {
			continue
		}
		if c.City != "" && !strings.EqualFold(l.City, c.City) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Title), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		if c.MaxPrice != nil && l.Price > *c.MaxPrice {
			continue
		}
		if c.OwnerID != "" && l.OwnerID != c.OwnerID {
			continue
		}
		out = append(out, l)
	}
	return out
}

// CriteriaFromQuery reads category, city, search, maxPrice and ownerId parameters.
func CriteriaFromQuery(q url.Values) (Criteria, error) {
	c := Criteria{
		Category:   strings.TrimSpace(q.Get("category")),
		City:       strings.TrimSpace(q.Get("city")),
		SearchText: strings.TrimSpace(q.Get("search")),
		OwnerID:    strings.TrimSpace(q.Get("ownerId")),
	}
	if v := strings.TrimSpace(q.Get("maxPrice")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid maxPrice %q", v)
		}
		c.MaxPrice = &p
	}
	return c, nil
}
