package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses are the booking states that hold seats of a ride.
var ActiveStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusCompleted}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCompleted
}

type Booking struct {
	ID          string        `json:"id"`
	RideID      string        `json:"ride_id"`
	RiderID     string        `json:"rider_id"`
	SeatsBooked int           `json:"seats_booked"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewBooking builds a CONFIRMED booking. It must only be persisted together
// with the matching seat decrement of the ride.
func NewBooking(rideID, riderID string, seats int, now time.Time) (*Booking, error) {
	rideID, riderID = CanonicalID(rideID), CanonicalID(riderID)
	if rideID == "" {
		return nil, fmt.Errorf("%w: ride_id is required", ErrValidation)
	}
	if riderID == "" {
		return nil, fmt.Errorf("%w: rider_id is required", ErrValidation)
	}
	if seats < 1 {
		return nil, fmt.Errorf("%w: seats_booked must be at least 1", ErrValidation)
	}

	now = now.UTC()
	return &Booking{
		ID:          uuid.New().String(),
		RideID:      rideID,
		RiderID:     riderID,
		SeatsBooked: seats,
		Status:      BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
