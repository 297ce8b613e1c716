package dto

type CoordinatesRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

type PlaceRequest struct {
	Name    string   `json:"name" binding:"required"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

type PublishRideRequest struct {
	DriverID      string       `json:"driver_id" binding:"required,uuid"`
	DepartureTime string       `json:"departure_time" binding:"required"`
	Origin        PlaceRequest `json:"origin" binding:"required"`
	Destination   PlaceRequest `json:"destination" binding:"required"`
	PricePerSeat  float64      `json:"price_per_seat" binding:"gte=0"`
	TotalSeats    int          `json:"total_seats" binding:"required,gt=0"`
}

type SearchRequest struct {
	Source      CoordinatesRequest `json:"source_coordinates" binding:"required"`
	Destination CoordinatesRequest `json:"destination_coordinates" binding:"required"`
	DateTime    string             `json:"date_time" binding:"required"`
	Capacity    int                `json:"capacity" binding:"required,gt=0"`
}

type BookRequest struct {
	RiderID     string `json:"rider_id" binding:"required,uuid"`
	SeatsBooked int    `json:"seats_booked" binding:"required,gt=0"`
}

type CancelBookingRequest struct {
	RiderID string `json:"rider_id" binding:"required,uuid"`
}

type SubmitReviewRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required,uuid"`
	ReviewerID   string `json:"reviewer_id" binding:"required,uuid"`
	RideID       string `json:"ride_id" binding:"required,uuid"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}
