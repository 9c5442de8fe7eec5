package fsm

import (
	"errors"
	"fmt"

	"github.com/Srivastav4327/RentMate/internal/models"
)

// ErrInvalidTransition is returned when a status change is not in the transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

var rentalTransitions = map[models.RentalStatus]map[models.RentalStatus]struct{}{
	models.RentalPending: {
		models.RentalApproved:  {},
		models.RentalRejected:  {},
		models.RentalCancelled: {},
	},
	models.RentalApproved: {
		models.RentalActive:    {},
		models.RentalCancelled: {},
	},
	models.RentalActive: {
		models.RentalCompleted: {},
		models.RentalCancelled: {},
	},
	models.RentalRejected:  {},
	models.RentalCompleted: {},
	models.RentalCancelled: {},
}

var paymentTransitions = map[models.PaymentStatus]map[models.PaymentStatus]struct{}{
	models.PaymentPending: {
		models.PaymentPaid:   {},
		models.PaymentFailed: {},
	},
	models.PaymentPaid:     {models.PaymentRefunded: {}},
	models.PaymentRefunded: {},
	models.PaymentFailed:   {},
}

// CanTransition reports whether a rental may move from one status to another.
// Staying in the same status is not a transition.
func CanTransition(from, to models.RentalStatus) bool {
	allowed, ok := rentalTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// CanTransitionPayment is CanTransition for payment statuses.
func CanTransitionPayment(from, to models.PaymentStatus) bool {
	allowed, ok := paymentTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

func IsTerminal(s models.RentalStatus) bool {
	allowed, ok := rentalTransitions[s]
	return ok && len(allowed) == 0
}

func IsKnown(s models.RentalStatus) bool {
	_, ok := rentalTransitions[s]
	return ok
}

func IsKnownPayment(s models.PaymentStatus) bool {
	_, ok := paymentTransitions[s]
	return ok
}

// Check returns ErrInvalidTransition, annotated with both statuses, when from -> to is not allowed.
func Check(from, to models.RentalStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

func CheckPayment(from, to models.PaymentStatus) error {
	if !CanTransitionPayment(from, to) {
		return fmt.Errorf("%w: payment %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
