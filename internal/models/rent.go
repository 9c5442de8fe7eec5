package models

import (
	"time"
)

type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalApproved  RentalStatus = "approved"
	RentalRejected  RentalStatus = "rejected"
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Rental is a booking of a listing by a renter over a date range.
// TotalPrice and CommissionFee are derived from the listing price and the dates.
type Rental struct {
	ID              string        `db:"id" json:"id"`
	ListingID       string        `db:"listing_id" json:"listing_id"`
	ListingTitle    string        `db:"listing_title" json:"listing_title"`
	ListingImage    string        `db:"listing_image" json:"listing_image"`
	RenterID        string        `db:"renter_id" json:"renter_id"`
	RenterName      string        `db:"renter_name" json:"renter_name"`
	OwnerID         string        `db:"owner_id" json:"owner_id"`
	OwnerName       string        `db:"owner_name" json:"owner_name"`
	StartDate       time.Time     `db:"start_date" json:"start_date"`
	EndDate         time.Time     `db:"end_date" json:"end_date"`
	TotalPrice      float64       `db:"total_price" json:"total_price"`
	CommissionFee   float64       `db:"commission_fee" json:"commission_fee"`
	SecurityDeposit *float64      `db:"security_deposit" json:"security_deposit,omitempty"`
	Status          RentalStatus  `db:"status" json:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentID       *string       `db:"payment_id" json:"payment_id,omitempty"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// RentalRole selects which side of a rental a user is listed by.
type RentalRole string

const (
	RoleRenter RentalRole = "renter"
	RoleOwner  RentalRole = "owner"
)

type RentalRequest struct {
	ListingID string    `json:"listing_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type RentalQuote struct {
	ListingID     string  `json:"listing_id"`
	DailyRate     float64 `json:"daily_rate"`
	TotalDays     int     `json:"total_days"`
	Subtotal      float64 `json:"subtotal"`
	CommissionFee float64 `json:"commission_fee"`
}

type PaymentUpdate struct {
	Status    PaymentStatus `json:"status"`
	PaymentID string        `json:"payment_id,omitempty"`
}
