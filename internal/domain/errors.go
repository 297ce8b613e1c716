package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrRideNotFound    = fmt.Errorf("ride %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrRatingNotFound  = fmt.Errorf("rating %w", ErrNotFound)
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidReview  = errors.New("invalid review")
	ErrValidation     = errors.New("validation error")
)

var (
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrRideNotBookable      = errors.New("ride is not open for booking")
	ErrInvalidTransition    = errors.New("invalid ride status transition")
	ErrBookingNotActive     = errors.New("booking is not active")
	ErrDuplicateReview      = errors.New("review already submitted for this ride and target")
)

var (
	ErrForbidden = errors.New("reviewer and target were not participants of a completed ride")
)

// ErrTransientStore marks storage failures that survived the retry budget
// (lock conflicts, serialization failures, lost connections).
var ErrTransientStore = errors.New("storage temporarily unavailable")

// InsufficientCapacityError carries the seat count that was actually left
// so the caller can retry with fewer seats.
type InsufficientCapacityError struct {
	Requested int
	Remaining int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%s: requested %d, remaining %d", ErrInsufficientCapacity, e.Requested, e.Remaining)
}

func (e *InsufficientCapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// RemainingSeats extracts the remaining-capacity detail from err, if any.
func RemainingSeats(err error) (int, bool) {
	var capErr *InsufficientCapacityError
	if errors.As(err, &capErr) {
		return capErr.Remaining, true
	}
	return 0, false
}
