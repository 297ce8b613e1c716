package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RideStatus string

const (
	RideStatusScheduled  RideStatus = "SCHEDULED"
	RideStatusInProgress RideStatus = "IN_PROGRESS"
	RideStatusCompleted  RideStatus = "COMPLETED"
	RideStatusCancelled  RideStatus = "CANCELLED"
)

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	switch s {
	case RideStatusScheduled:
		return next == RideStatusInProgress || next == RideStatusCancelled
	case RideStatusInProgress:
		return next == RideStatusCompleted
	default:
		return false
	}
}

type Ride struct {
	ID             string     `json:"id"`
	DriverID       string     `json:"driver_id"`
	DepartureTime  time.Time  `json:"departure_time"`
	Origin         Place      `json:"origin"`
	Destination    Place      `json:"destination"`
	PricePerSeat   float64    `json:"price_per_seat"`
	TotalSeats     int        `json:"total_seats"`
	AvailableSeats int        `json:"available_seats"`
	Status         RideStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type PublishRideInput struct {
	DriverID      string
	DepartureTime time.Time
	Origin        Place
	Destination   Place
	PricePerSeat  float64
	TotalSeats    int
}

// NewRide validates input and builds a SCHEDULED offer with every seat available.
func NewRide(input PublishRideInput, now time.Time) (*Ride, error) {
	input.DriverID = CanonicalID(input.DriverID)
	if input.DriverID == "" {
		return nil, fmt.Errorf("%w: driver_id is required", ErrValidation)
	}
	if input.DepartureTime.IsZero() {
		return nil, fmt.Errorf("%w: departure_time is required", ErrValidation)
	}
	if err := input.Origin.Point.Validate(); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	if err := input.Destination.Point.Validate(); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	if input.PricePerSeat < 0 {
		return nil, fmt.Errorf("%w: price_per_seat must not be negative", ErrValidation)
	}
	if input.TotalSeats < 1 {
		return nil, fmt.Errorf("%w: total_seats must be at least 1", ErrValidation)
	}

	now = now.UTC()
	return &Ride{
		ID:             uuid.New().String(),
		DriverID:       input.DriverID,
		DepartureTime:  input.DepartureTime.UTC(),
		Origin:         trimPlace(input.Origin),
		Destination:    trimPlace(input.Destination),
		PricePerSeat:   input.PricePerSeat,
		TotalSeats:     input.TotalSeats,
		AvailableSeats: input.TotalSeats,
		Status:         RideStatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func trimPlace(p Place) Place {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	return p
}

type RideDetails struct {
	Ride     Ride      `json:"ride"`
	Bookings []Booking `json:"bookings"`
}
