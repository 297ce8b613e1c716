package domain

import (
	"fmt"
	"time"
)

// RiderRequest is a transient search request; it is never persisted.
type RiderRequest struct {
	Origin      Point     `json:"source_coordinates"`
	Destination Point     `json:"destination_coordinates"`
	DesiredTime time.Time `json:"date_time"`
	Seats       int       `json:"capacity"`
}

func (r RiderRequest) Validate() error {
	if err := r.Origin.Validate(); err != nil {
		return fmt.Errorf("%w: source_coordinates: %v", ErrInvalidRequest, err)
	}
	if err := r.Destination.Validate(); err != nil {
		return fmt.Errorf("%w: destination_coordinates: %v", ErrInvalidRequest, err)
	}
	if r.DesiredTime.IsZero() {
		return fmt.Errorf("%w: date_time is required", ErrInvalidRequest)
	}
	if r.Seats < 1 {
		return fmt.Errorf("%w: capacity must be a positive integer", ErrInvalidRequest)
	}
	return nil
}

// CandidateQuery selects SCHEDULED rides with enough seats whose origin lies
// within RadiusMeters of Origin and whose departure is in [From, To].
type CandidateQuery struct {
	Origin       Point
	RadiusMeters float64
	From         time.Time
	To           time.Time
	MinSeats     int
	Limit        int
}

type Candidate struct {
	Ride           Ride
	DistanceMeters float64
}

type Feasibility struct {
	Feasible     bool
	ExtraMinutes float64
}

type ScoredCandidate struct {
	Ride           Ride    `json:"ride"`
	DistanceMeters float64 `json:"distance_m"`
	ExtraMinutes   float64 `json:"extra_minutes"`
	Score          float64 `json:"score"`
}
