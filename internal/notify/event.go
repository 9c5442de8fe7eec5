package notify

import (
	"time"

	"github.com/Srivastav4327/RentMate/internal/models"
)

const (
	EventRentalRequested = "rental_requested"
	EventRentalStatus    = "rental_status"
	EventPaymentStatus   = "payment_status"
)

// Event is pushed to owners and renters when a rental changes.
type Event struct {
	Type          string               `json:"type"`
	RentalID      string               `json:"rental_id"`
	ListingID     string               `json:"listing_id"`
	ListingTitle  string               `json:"listing_title,omitempty"`
	Status        models.RentalStatus  `json:"status,omitempty"`
	PaymentStatus models.PaymentStatus `json:"payment_status,omitempty"`
	At            time.Time            `json:"at"`
}

func RentalEvent(kind string, r models.Rental) Event {
	return Event{
		Type:          kind,
		RentalID:      r.ID,
		ListingID:     r.ListingID,
		ListingTitle:  r.ListingTitle,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
		At:            time.Now().UTC(),
	}
}

// Title is the short human readable line used for push notifications.
func (e Event) Title() string {
	switch e.Type {
	case EventRentalRequested:
		return "New rental request"
	case EventPaymentStatus:
		return "Payment " + string(e.PaymentStatus)
	default:
		return "Rental " + string(e.Status)
	}
}
