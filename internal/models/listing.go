package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type ListingStatus string

const (
	ListingAvailable   ListingStatus = "available"
	ListingRented      ListingStatus = "rented"
	ListingUnavailable ListingStatus = "unavailable"
)

func (s ListingStatus) Valid() bool {
	switch s {
	case ListingAvailable, ListingRented, ListingUnavailable:
		return true
	}
	return false
}

// Listing is an item offered for rent by its owner. Price is the daily rate.
type Listing struct {
	ID          string        `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Description string        `db:"description" json:"description"`
	Category    string        `db:"category" json:"category"`
	Price       float64       `db:"price" json:"price"`
	Deposit     *float64      `db:"deposit" json:"deposit,omitempty"`
	Location    string        `db:"location" json:"location"`
	City        string        `db:"city" json:"city"`
	State       string        `db:"state" json:"state"`
	Images      StringList    `db:"images" json:"images"`
	OwnerID     string        `db:"owner_id" json:"owner_id"`
	OwnerName   string        `db:"owner_name" json:"owner_name"`
	OwnerPhoto  *string       `db:"owner_photo" json:"owner_photo,omitempty"`
	Status      ListingStatus `db:"status" json:"status"`
	Featured    bool          `db:"featured" json:"featured"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
	DeletedAt   *time.Time    `db:"deleted_at" json:"-"`
}

// PrimaryImage returns the first image reference or an empty string.
func (l Listing) PrimaryImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// StringList is stored as a JSON array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("models: unsupported images column type")
	}
	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*s = out
	return nil
}

// ListingDraft is the owner-supplied part of a new listing.
type ListingDraft struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required,category"`
	Price       float64  `json:"price" validate:"gt=0"`
	Deposit     *float64 `json:"deposit,omitempty" validate:"omitempty,gt=0"`
	Location    string   `json:"location" validate:"required"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state"`
	Images      []string `json:"images" validate:"min=1,dive,required"`
}

// ListingUpdate changes only the fields that are set.
type ListingUpdate struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string        `json:"description,omitempty" validate:"omitempty,min=1"`
	Category    *string        `json:"category,omitempty" validate:"omitempty,category"`
	Price       *float64       `json:"price,omitempty" validate:"omitempty,gt=0"`
	Deposit     *float64       `json:"deposit,omitempty" validate:"omitempty,gt=0"`
	Location    *string        `json:"location,omitempty" validate:"omitempty,min=1"`
	City        *string        `json:"city,omitempty" validate:"omitempty,min=1"`
	State       *string        `json:"state,omitempty"`
	Images      *[]string      `json:"images,omitempty" validate:"omitempty,min=1,dive,required"`
	Status      *ListingStatus `json:"status,omitempty" validate:"omitempty,listing_status"`
}

func (u ListingUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil && u.Price == nil &&
		u.Deposit == nil && u.Location == nil && u.City == nil && u.State == nil &&
		u.Images == nil && u.Status == nil
}

// ApplyTo copies the set fields onto l.
func (u ListingUpdate) ApplyTo(l *Listing) {
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Category != nil {
		l.Category = *u.Category
	}
	if u.Price != nil {
		l.Price = *u.Price
	}
	if u.Deposit != nil {
		d := *u.Deposit
		l.Deposit = &d
	}
	if u.Location != nil {
		l.Location = *u.Location
	}
	if u.City != nil {
		l.City = *u.City
	}
	if u.State != nil {
		l.State = *u.State
	}
	if u.Images != nil {
		l.Images = append(StringList(nil), (*u.Images)...)
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
}
