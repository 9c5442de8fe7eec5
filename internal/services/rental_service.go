package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/notify"
	"github.com/Srivastav4327/RentMate/internal/rent/fsm"
	"github.com/Srivastav4327/RentMate/internal/rent/pricing"
)

type RentalService struct {
	Listings       ListingStore
	Rentals        RentalStore
	Notifier       Notifier
	Logger         Logger
	CommissionRate float64

	now func() time.Time
}

func NewRentalService(listings ListingStore, rentals RentalStore, notifier Notifier, logger Logger, commissionRate float64) *RentalService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &RentalService{
		Listings:       listings,
		Rentals:        rentals,
		Notifier:       notifier,
		Logger:         logger,
		CommissionRate: commissionRate,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Quote prices a date range without booking it. Both dates are required.
func (s *RentalService) Quote(ctx context.Context, listingID string, start, end time.Time) (*models.RentalQuote, error) {
	if strings.TrimSpace(listingID) == "" {
		return nil, invalid("listing_id", "is required")
	}
	if start.IsZero() {
		return nil, invalid("start_date", "is required")
	}
	if end.IsZero() {
		return nil, invalid("end_date", "is required")
	}
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", listingID, err)
	}
	if l == nil {
		return nil, models.ErrListingNotFound
	}
	q := pricing.Calculate(l.Price, start, end, s.CommissionRate)
	return &models.RentalQuote{
		ListingID:     l.ID,
		DailyRate:     l.Price,
		TotalDays:     q.TotalDays,
		Subtotal:      q.Subtotal,
		CommissionFee: q.CommissionFee,
	}, nil
}

// RequestRental books a listing for the renter. Every rejected request
// returns before the rental store is touched.
func (s *RentalService) RequestRental(ctx context.Context, renter models.Identity, req models.RentalRequest) (*models.Rental, error) {
	if !renter.Authenticated {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.ListingID) == "" {
		return nil, invalid("listing_id", "is required")
	}
	if req.StartDate.IsZero() {
		return nil, invalid("start_date", "is required")
	}
	if req.EndDate.IsZero() {
		return nil, invalid("end_date", "is required")
	}

	l, err := s.Listings.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", req.ListingID, err)
	}
	if l == nil {
		return nil, models.ErrListingNotFound
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, invalid("end_date", "must not be before start_date")
	}
	if l.OwnerID == renter.ID {
		return nil, &PreconditionError{Reason: "you cannot rent your own listing"}
	}
	if l.Status != models.ListingAvailable {
		return nil, &PreconditionError{Reason: "listing is not available for rent"}
	}

	q := pricing.Calculate(l.Price, req.StartDate, req.EndDate, s.CommissionRate)
	now := s.now()
	r := &models.Rental{
		ID:            uuid.NewString(),
		ListingID:     l.ID,
		ListingTitle:  l.Title,
		ListingImage:  l.PrimaryImage(),
		RenterID:      renter.ID,
		RenterName:    renter.DisplayName,
		OwnerID:       l.OwnerID,
		OwnerName:     l.OwnerName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TotalPrice:    q.Subtotal,
		CommissionFee: q.CommissionFee,
		Status:        models.RentalPending,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if l.Deposit != nil {
		d := *l.Deposit
		r.SecurityDeposit = &d
	}

	if err := s.Rentals.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create rental: %w", err)
	}
	s.Logger.Infof("rental %s requested for listing %s by %s", r.ID, l.ID, renter.ID)
	s.Notifier.Notify(ctx, r.OwnerID, notify.RentalEvent(notify.EventRentalRequested, *r))
	return r, nil
}

// Get returns nil, nil when the rental does not exist.
func (s *RentalService) Get(ctx context.Context, id string) (*models.Rental, error) {
	r, err := s.Rentals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rental %s: %w", id, err)
	}
	return r, nil
}

// View is Get restricted to the renter, the owner and admins.
func (s *RentalService) View(ctx context.Context, actor models.Identity, id string) (*models.Rental, error) {
	r, err := s.Get(ctx, id)
	if err != nil || r == nil {
		return r, err
	}
	if !participant(actor, *r) {
		return nil, ErrForbidden
	}
	return r, nil
}

func (s *RentalService) ListByUser(ctx context.Context, userID string, role models.RentalRole) ([]models.Rental, error) {
	if role != models.RoleRenter && role != models.RoleOwner {
		return nil, invalid("role", "must be renter or owner")
	}
	list, err := s.Rentals.ListByUser(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("list rentals for %s: %w", userID, err)
	}
	return list, nil
}

func (s *RentalService) Transition(ctx context.Context, actor models.Identity, id string, target models.RentalStatus) (*models.Rental, error) {
	if !fsm.IsKnown(target) {
		return nil, invalid("status", fmt.Sprintf("unknown rental status %q", target))
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, models.ErrRentalNotFound
	}
	if !mayTransition(actor, *r, target) {
		return nil, ErrForbidden
	}
	if err := fsm.Check(r.Status, target); err != nil {
		return nil, err
	}

	if target == models.RentalActive {
		l, err := s.Listings.GetByID(ctx, r.ListingID)
		if err != nil {
			return nil, fmt.Errorf("get listing %s: %w", r.ListingID, err)
		}
		if l == nil {
			return nil, &PreconditionError{Reason: "listing no longer exists"}
		}
		if l.Status != models.ListingAvailable {
			return nil, &PreconditionError{Reason: "listing is not available for rent"}
		}
	}

	from := r.Status
	if err := s.Rentals.UpdateStatus(ctx, id, from, target); err != nil {
		return nil, fmt.Errorf("update rental %s status: %w", id, err)
	}
	r.Status = target
	r.UpdatedAt = s.now()

	switch {
	case target == models.RentalActive:
		s.setListingStatus(ctx, r.ListingID, models.ListingRented)
	case from == models.RentalActive:
		s.setListingStatus(ctx, r.ListingID, models.ListingAvailable)
	}

	ev := notify.RentalEvent(notify.EventRentalStatus, *r)
	s.Notifier.Notify(ctx, r.RenterID, ev)
	s.Notifier.Notify(ctx, r.OwnerID, ev)
	return r, nil
}

func (s *RentalService) RecordPayment(ctx context.Context, actor models.Identity, id string, upd models.PaymentUpdate) (*models.Rental, error) {
	if !fsm.IsKnownPayment(upd.Status) {
		return nil, invalid("status", fmt.Sprintf("unknown payment status %q", upd.Status))
	}
	if upd.Status == models.PaymentPaid && strings.TrimSpace(upd.PaymentID) == "" {
		return nil, invalid("payment_id", "is required when payment is paid")
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, models.ErrRentalNotFound
	}
	if !mayRecordPayment(actor, *r, upd.Status) {
		return nil, ErrForbidden
	}
	if err := fsm.CheckPayment(r.PaymentStatus, upd.Status); err != nil {
		return nil, err
	}

	var paymentID *string
	if upd.PaymentID != "" {
		p := upd.PaymentID
		paymentID = &p
	}
	if err := s.Rentals.UpdatePayment(ctx, id, r.PaymentStatus, upd.Status, paymentID); err != nil {
		return nil, fmt.Errorf("update rental %s payment: %w", id, err)
	}
	r.PaymentStatus = upd.Status
	if paymentID != nil {
		r.PaymentID = paymentID
	}
	r.UpdatedAt = s.now()

	ev := notify.RentalEvent(notify.EventPaymentStatus, *r)
	s.Notifier.Notify(ctx, r.RenterID, ev)
	s.Notifier.Notify(ctx, r.OwnerID, ev)
	return r, nil
}

func (s *RentalService) setListingStatus(ctx context.Context, listingID string, status models.ListingStatus) {
	err := s.Listings.SetStatus(ctx, listingID, status)
	if err != nil && !errors.Is(err, models.ErrListingNotFound) {
		s.Logger.Errorf("set listing %s status %s: %v", listingID, status, err)
	}
}

func participant(actor models.Identity, r models.Rental) bool {
	return actor.Authenticated && (actor.ID == r.RenterID || actor.ID == r.OwnerID || actor.IsAdmin())
}

// Owners drive the lifecycle; either party may cancel.
func mayTransition(actor models.Identity, r models.Rental, target models.RentalStatus) bool {
	if !actor.Authenticated {
		return false
	}
	if actor.IsAdmin() || actor.ID == r.OwnerID {
		return true
	}
	return target == models.RentalCancelled && actor.ID == r.RenterID
}

// Renters pay, owners refund.
func mayRecordPayment(actor models.Identity, r models.Rental, target models.PaymentStatus) bool {
	if !actor.Authenticated {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if target == models.PaymentRefunded {
		return actor.ID == r.OwnerID
	}
	return actor.ID == r.RenterID
}
