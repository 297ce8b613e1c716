package dto

import (
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type PlaceResponse struct {
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type RideResponse struct {
	ID             string        `json:"id"`
	DriverID       string        `json:"driver_id"`
	DepartureTime  string        `json:"departure_time"`
	Origin         PlaceResponse `json:"origin"`
	Destination    PlaceResponse `json:"destination"`
	PricePerSeat   float64       `json:"price_per_seat"`
	TotalSeats     int           `json:"total_seats"`
	AvailableSeats int           `json:"available_seats"`
	Status         string        `json:"status"`
	CreatedAt      string        `json:"created_at"`
}

type RideDetailsResponse struct {
	Ride     RideResponse      `json:"ride"`
	Bookings []BookingResponse `json:"bookings"`
}

type MatchResponse struct {
	Ride         RideResponse `json:"ride"`
	DistanceM    float64      `json:"distance_m"`
	ExtraMinutes float64      `json:"extra_minutes"`
	Score        float64      `json:"score"`
}

type SearchResponse struct {
	Count int             `json:"count"`
	Data  []MatchResponse `json:"data"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	RideID      string `json:"ride_id"`
	RiderID     string `json:"rider_id"`
	SeatsBooked int    `json:"seats_booked"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	TargetUserID string `json:"target_user_id"`
	ReviewerID   string `json:"reviewer_id"`
	RideID       string `json:"ride_id"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type RatingResponse struct {
	UserID         string  `json:"user_id"`
	AverageRating  float64 `json:"average_rating"`
	RidesCompleted int     `json:"rides_completed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// CapacityErrorResponse tells the rider how many seats are still left.
type CapacityErrorResponse struct {
	Error     string `json:"error"`
	Remaining int    `json:"remaining"`
}

func toPlaceResponse(p domain.Place) PlaceResponse {
	return PlaceResponse{
		Name:    p.Name,
		Address: p.Address,
		Lat:     p.Point.Lat,
		Lng:     p.Point.Lng,
	}
}

func ToRideResponse(r *domain.Ride) RideResponse {
	return RideResponse{
		ID:             r.ID,
		DriverID:       r.DriverID,
		DepartureTime:  r.DepartureTime.Format(time.RFC3339),
		Origin:         toPlaceResponse(r.Origin),
		Destination:    toPlaceResponse(r.Destination),
		PricePerSeat:   r.PricePerSeat,
		TotalSeats:     r.TotalSeats,
		AvailableSeats: r.AvailableSeats,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRideDetailsResponse(d *domain.RideDetails) RideDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return RideDetailsResponse{
		Ride:     ToRideResponse(&d.Ride),
		Bookings: bookings,
	}
}

func ToSearchResponse(matches []domain.ScoredCandidate) SearchResponse {
	data := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		data = append(data, MatchResponse{
			Ride:         ToRideResponse(&m.Ride),
			DistanceM:    m.DistanceMeters,
			ExtraMinutes: m.ExtraMinutes,
			Score:        m.Score,
		})
	}

	return SearchResponse{Count: len(data), Data: data}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		RideID:      b.RideID,
		RiderID:     b.RiderID,
		SeatsBooked: b.SeatsBooked,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		TargetUserID: r.TargetUserID,
		ReviewerID:   r.ReviewerID,
		RideID:       r.RideID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRatingResponse(r *domain.UserRating) RatingResponse {
	return RatingResponse{
		UserID:         r.UserID,
		AverageRating:  r.AverageRating,
		RidesCompleted: r.RidesCompleted,
	}
}
