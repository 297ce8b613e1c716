package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/handler/dto"
	hmocks "github.com/tendolkarurja/IPD/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	ride    *hmocks.MockRideSvc
	match   *hmocks.MockMatchSvc
	booking *hmocks.MockBookingSvc
	review  *hmocks.MockReviewSvc
	rating  *hmocks.MockRatingSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		ride:    hmocks.NewMockRideSvc(t),
		match:   hmocks.NewMockMatchSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		review:  hmocks.NewMockReviewSvc(t),
		rating:  hmocks.NewMockRatingSvc(t),
	}

	h := NewHandler(m.ride, m.match, m.booking, m.review, m.rating)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/rides", h.PublishRide)
		api.POST("/rides/search", h.SearchRides)
		api.GET("/rides/:id", h.GetRide)
		api.POST("/rides/:id/book", h.BookRide)
		api.POST("/rides/:id/start", h.StartRide)
		api.POST("/rides/:id/complete", h.CompleteRide)
		api.POST("/rides/:id/cancel", h.CancelRide)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/riders/:id/bookings", h.GetRiderBookings)
		api.POST("/reviews", h.SubmitReview)
		api.GET("/users/:id/rating", h.GetUserRating)
		api.GET("/users/:id/reviews", h.GetUserReviews)
	}

	return m, r
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Rides ---

func TestHandler_PublishRide_Success(t *testing.T) {
	m, r := setupRouter(t)

	driverID := uuid.New().String()
	departure := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	ride := &domain.Ride{
		ID:             uuid.New().String(),
		DriverID:       driverID,
		DepartureTime:  departure,
		Origin:         domain.Place{Name: "MG Road", Point: domain.Point{Lat: 12.975, Lng: 77.606}},
		Destination:    domain.Place{Name: "Airport", Point: domain.Point{Lat: 13.199, Lng: 77.706}},
		TotalSeats:     3,
		AvailableSeats: 3,
		Status:         domain.RideStatusScheduled,
	}

	m.ride.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(in domain.PublishRideInput) bool {
		return in.DriverID == driverID && in.TotalSeats == 3 && in.Origin.Point.Lat == 12.975 &&
			in.DepartureTime.Equal(departure)
	})).Return(ride, nil)

	body := []byte(`{
		"driver_id":"` + driverID + `",
		"departure_time":"` + departure.Format(time.RFC3339) + `",
		"origin":{"name":"MG Road","lat":12.975,"lng":77.606},
		"destination":{"name":"Airport","lat":13.199,"lng":77.706},
		"price_per_seat":250,
		"total_seats":3
	}`)

	w := do(r, http.MethodPost, "/api/rides", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RideResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ride.ID, resp.ID)
	assert.Equal(t, 3, resp.AvailableSeats)
	assert.Equal(t, "SCHEDULED", resp.Status)
}

func TestHandler_PublishRide_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/rides", []byte(`{"driver_id":"nope"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PublishRide_InvalidDeparture(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{
		"driver_id":"` + uuid.New().String() + `",
		"departure_time":"tomorrow",
		"origin":{"name":"A","lat":1,"lng":1},
		"destination":{"name":"B","lat":2,"lng":2},
		"total_seats":1
	}`)

	w := do(r, http.MethodPost, "/api/rides", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRide_Success(t *testing.T) {
	m, r := setupRouter(t)

	rideID := uuid.New().String()
	m.ride.EXPECT().GetDetails(mock.Anything, rideID).Return(&domain.RideDetails{
		Ride: domain.Ride{ID: rideID, TotalSeats: 3, AvailableSeats: 1, Status: domain.RideStatusScheduled},
		Bookings: []domain.Booking{
			{ID: "b1", RideID: rideID, SeatsBooked: 2, Status: domain.BookingStatusConfirmed},
		},
	}, nil)

	w := do(r, http.MethodGet, "/api/rides/"+rideID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RideDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Ride.AvailableSeats)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 2, resp.Bookings[0].SeatsBooked)
}

func TestHandler_GetRide_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/api/rides/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRide_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	rideID := uuid.New().String()
	m.ride.EXPECT().GetDetails(mock.Anything, rideID).Return(nil, domain.ErrRideNotFound)

	w := do(r, http.MethodGet, "/api/rides/"+rideID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RideTransitions(t *testing.T) {
	tests := []struct {
		path   string
		expect func(m svcMocks, id string) *mock.Call
		status domain.RideStatus
	}{
		{path: "start", status: domain.RideStatusInProgress, expect: func(m svcMocks, id string) *mock.Call {
			return m.ride.EXPECT().Start(mock.Anything, id).Call
		}},
		{path: "complete", status: domain.RideStatusCompleted, expect: func(m svcMocks, id string) *mock.Call {
			return m.ride.EXPECT().Complete(mock.Anything, id).Call
		}},
		{path: "cancel", status: domain.RideStatusCancelled, expect: func(m svcMocks, id string) *mock.Call {
			return m.ride.EXPECT().Cancel(mock.Anything, id).Call
		}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, r := setupRouter(t)
			rideID := uuid.New().String()
			tt.expect(m, rideID).Return(&domain.Ride{ID: rideID, Status: tt.status}, nil)

			w := do(r, http.MethodPost, "/api/rides/"+rideID+"/"+tt.path, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp dto.RideResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.status), resp.Status)
		})
	}
}

func TestHandler_CompleteRide_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	rideID := uuid.New().String()
	m.ride.EXPECT().Complete(mock.Anything, rideID).Return(nil, domain.ErrInvalidTransition)

	w := do(r, http.MethodPost, "/api/rides/"+rideID+"/complete", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Search ---

func TestHandler_SearchRides_Success(t *testing.T) {
	m, r := setupRouter(t)

	when := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	m.match.EXPECT().FindMatches(mock.Anything, domain.RiderRequest{
		Origin:      domain.Point{Lat: 12.97, Lng: 77.59},
		Destination: domain.Point{Lat: 13.19, Lng: 77.7},
		DesiredTime: when,
		Seats:       2,
	}).Return([]domain.ScoredCandidate{
		{Ride: domain.Ride{ID: "r1"}, DistanceMeters: 120, ExtraMinutes: 5, Score: 630},
	}, nil)

	body := []byte(`{
		"source_coordinates":{"lat":12.97,"lng":77.59},
		"destination_coordinates":{"lat":13.19,"lng":77.7},
		"date_time":"2026-10-20T09:00:00Z",
		"capacity":2
	}`)

	w := do(r, http.MethodPost, "/api/rides/search", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 630.0, resp.Data[0].Score)
	assert.Equal(t, 120.0, resp.Data[0].DistanceM)
}

func TestHandler_SearchRides_EmptyResultIsArray(t *testing.T) {
	m, r := setupRouter(t)

	m.match.EXPECT().FindMatches(mock.Anything, mock.Anything).Return([]domain.ScoredCandidate{}, nil)

	body := []byte(`{
		"source_coordinates":{"lat":0,"lng":0},
		"destination_coordinates":{"lat":1,"lng":1},
		"date_time":"2026-10-20T09:00:00Z",
		"capacity":1
	}`)

	w := do(r, http.MethodPost, "/api/rides/search", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"data":[]}`, w.Body.String())
}

func TestHandler_SearchRides_InvalidInput(t *testing.T) {
	cases := map[string]string{
		"latitude out of range": `{"source_coordinates":{"lat":95,"lng":0},"destination_coordinates":{"lat":1,"lng":1},"date_time":"2026-10-20T09:00:00Z","capacity":1}`,
		"missing coordinates":   `{"destination_coordinates":{"lat":1,"lng":1},"date_time":"2026-10-20T09:00:00Z","capacity":1}`,
		"zero capacity":         `{"source_coordinates":{"lat":0,"lng":0},"destination_coordinates":{"lat":1,"lng":1},"date_time":"2026-10-20T09:00:00Z","capacity":0}`,
		"bad date":              `{"source_coordinates":{"lat":0,"lng":0},"destination_coordinates":{"lat":1,"lng":1},"date_time":"20/10/2026","capacity":1}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, r := setupRouter(t)

			w := do(r, http.MethodPost, "/api/rides/search", []byte(body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// --- Bookings ---

func TestHandler_BookRide_Success(t *testing.T) {
	m, r := setupRouter(t)

	rideID := uuid.New().String()
	riderID := uuid.New().String()
	m.booking.EXPECT().Reserve(mock.Anything, rideID, riderID, 2).Return(&domain.Booking{
		ID: uuid.New().String(), RideID: rideID, RiderID: riderID, SeatsBooked: 2, Status: domain.BookingStatusConfirmed,
	}, nil)

	body, _ := json.Marshal(dto.BookRequest{RiderID: riderID, SeatsBooked: 2})
	w := do(r, http.MethodPost, "/api/rides/"+rideID+"/book", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, 2, resp.SeatsBooked)
}

func TestHandler_BookRide_InsufficientCapacity(t *testing.T) {
	m, r := setupRouter(t)

	rideID := uuid.New().String()
	riderID := uuid.New().String()
	m.booking.EXPECT().Reserve(mock.Anything, rideID, riderID, 2).
		Return(nil, &domain.InsufficientCapacityError{Requested: 2, Remaining: 1})

	body, _ := json.Marshal(dto.BookRequest{RiderID: riderID, SeatsBooked: 2})
	w := do(r, http.MethodPost, "/api/rides/"+rideID+"/book", body)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.CapacityErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Remaining)
}

func TestHandler_BookRide_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"ride not found", domain.ErrRideNotFound, http.StatusNotFound},
		{"ride not bookable", domain.ErrRideNotBookable, http.StatusConflict},
		{"store unavailable", domain.ErrTransientStore, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)
			rideID := uuid.New().String()
			riderID := uuid.New().String()
			m.booking.EXPECT().Reserve(mock.Anything, rideID, riderID, 1).Return(nil, tt.err)

			body, _ := json.Marshal(dto.BookRequest{RiderID: riderID, SeatsBooked: 1})
			w := do(r, http.MethodPost, "/api/rides/"+rideID+"/book", body)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_BookRide_ZeroSeats(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"rider_id":"` + uuid.New().String() + `","seats_booked":0}`)
	w := do(r, http.MethodPost, "/api/rides/"+uuid.New().String()+"/book", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	riderID := uuid.New().String()
	m.booking.EXPECT().Cancel(mock.Anything, bookingID, riderID).Return(&domain.Booking{
		ID: bookingID, RiderID: riderID, Status: domain.BookingStatusCancelled,
	}, nil)

	body, _ := json.Marshal(dto.CancelBookingRequest{RiderID: riderID})
	w := do(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_NotActive(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	riderID := uuid.New().String()
	m.booking.EXPECT().Cancel(mock.Anything, bookingID, riderID).Return(nil, domain.ErrBookingNotActive)

	body, _ := json.Marshal(dto.CancelBookingRequest{RiderID: riderID})
	w := do(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetRiderBookings(t *testing.T) {
	m, r := setupRouter(t)

	riderID := uuid.New().String()
	m.booking.EXPECT().ListByRider(mock.Anything, riderID).Return([]*domain.Booking{
		{ID: "b1", RiderID: riderID}, {ID: "b2", RiderID: riderID},
	}, nil)

	w := do(r, http.MethodGet, "/api/riders/"+riderID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Reviews ---

func reviewBody(rating int) []byte {
	body, _ := json.Marshal(dto.SubmitReviewRequest{
		TargetUserID: uuid.New().String(),
		ReviewerID:   uuid.New().String(),
		RideID:       uuid.New().String(),
		Rating:       rating,
		Comment:      "friendly driver",
	})
	return body
}

func TestHandler_SubmitReview_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.review.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(in domain.SubmitReviewInput) bool {
		return in.Rating == 5 && in.Comment == "friendly driver"
	})).Return(&domain.Review{ID: "rv1", Rating: 5, Comment: "friendly driver"}, nil)

	w := do(r, http.MethodPost, "/api/reviews", reviewBody(5))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Rating)
}

func TestHandler_SubmitReview_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid rating", domain.ErrInvalidReview, http.StatusBadRequest},
		{"not a participant", domain.ErrForbidden, http.StatusForbidden},
		{"duplicate", domain.ErrDuplicateReview, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)
			m.review.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := do(r, http.MethodPost, "/api/reviews", reviewBody(4))

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_SubmitReview_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/reviews", []byte(`{"rating":4}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserRating(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.rating.EXPECT().Get(mock.Anything, userID).Return(&domain.UserRating{
		UserID: userID, AverageRating: 3, RidesCompleted: 2,
	}, nil)

	w := do(r, http.MethodGet, "/api/users/"+userID+"/rating", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"`+userID+`","average_rating":3,"rides_completed":2}`, w.Body.String())
}

func TestHandler_GetUserRating_CanonicalPathID(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.rating.EXPECT().Get(mock.Anything, userID).Return(&domain.UserRating{UserID: userID}, nil)

	w := do(r, http.MethodGet, "/api/users/"+strings.ToUpper(userID)+"/rating", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUserReviews(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.review.EXPECT().ListByTarget(mock.Anything, userID).Return([]*domain.Review{
		{ID: "rv1", TargetUserID: userID, Rating: 4},
	}, nil)

	w := do(r, http.MethodGet, "/api/users/"+userID+"/reviews", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 4, resp[0].Rating)
}
