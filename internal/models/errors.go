package models

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrListingNotFound    = errors.New("models: listing not found")
	ErrRentalNotFound     = errors.New("models: rental not found")
	ErrSessionNotFound    = errors.New("models: session not found")
	ErrStaleRecord        = errors.New("models: record changed concurrently")
)
