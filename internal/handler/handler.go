package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type RideSvc interface {
	Publish(ctx context.Context, input domain.PublishRideInput) (*domain.Ride, error)
	GetDetails(ctx context.Context, id string) (*domain.RideDetails, error)
	Start(ctx context.Context, id string) (*domain.Ride, error)
	Complete(ctx context.Context, id string) (*domain.Ride, error)
	Cancel(ctx context.Context, id string) (*domain.Ride, error)
}

type MatchSvc interface {
	FindMatches(ctx context.Context, req domain.RiderRequest) ([]domain.ScoredCandidate, error)
}

type BookingSvc interface {
	Reserve(ctx context.Context, rideID, riderID string, seats int) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, riderID string) (*domain.Booking, error)
	ListByRider(ctx context.Context, riderID string) ([]*domain.Booking, error)
}

type ReviewSvc interface {
	Submit(ctx context.Context, input domain.SubmitReviewInput) (*domain.Review, error)
	ListByTarget(ctx context.Context, targetID string) ([]*domain.Review, error)
}

type RatingSvc interface {
	Get(ctx context.Context, userID string) (*domain.UserRating, error)
}

type Handler struct {
	rideService    RideSvc
	matchService   MatchSvc
	bookingService BookingSvc
	reviewService  ReviewSvc
	ratingService  RatingSvc
}

func NewHandler(
	rideService RideSvc,
	matchService MatchSvc,
	bookingService BookingSvc,
	reviewService ReviewSvc,
	ratingService RatingSvc,
) *Handler {
	return &Handler{
		rideService:    rideService,
		matchService:   matchService,
		bookingService: bookingService,
		reviewService:  reviewService,
		ratingService:  ratingService,
	}
}

// Rides

func (h *Handler) PublishRide(c *ginext.Context) {
	var req dto.PublishRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid departure_time format, expected RFC3339",
		})
		return
	}

	input := domain.PublishRideInput{
		DriverID:      req.DriverID,
		DepartureTime: departure,
		Origin:        toPlace(req.Origin),
		Destination:   toPlace(req.Destination),
		PricePerSeat:  req.PricePerSeat,
		TotalSeats:    req.TotalSeats,
	}

	ride, err := h.rideService.Publish(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRideResponse(ride))
}

func (h *Handler) GetRide(c *ginext.Context) {
	id, ok := pathUUID(c, "invalid ride id")
	if !ok {
		return
	}

	details, err := h.rideService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRideDetailsResponse(details))
}

func (h *Handler) StartRide(c *ginext.Context) {
	h.transitionRide(c, h.rideService.Start)
}

func (h *Handler) CompleteRide(c *ginext.Context) {
	h.transitionRide(c, h.rideService.Complete)
}

func (h *Handler) CancelRide(c *ginext.Context) {
	h.transitionRide(c, h.rideService.Cancel)
}

func (h *Handler) transitionRide(c *ginext.Context, fn func(context.Context, string) (*domain.Ride, error)) {
	id, ok := pathUUID(c, "invalid ride id")
	if !ok {
		return
	}

	ride, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRideResponse(ride))
}

// Search

func (h *Handler) SearchRides(c *ginext.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	desired, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date_time format, expected RFC3339",
		})
		return
	}

	matches, err := h.matchService.FindMatches(c.Request.Context(), domain.RiderRequest{
		Origin:      domain.Point{Lat: *req.Source.Lat, Lng: *req.Source.Lng},
		Destination: domain.Point{Lat: *req.Destination.Lat, Lng: *req.Destination.Lng},
		DesiredTime: desired,
		Seats:       req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(matches))
}

// Bookings

func (h *Handler) BookRide(c *ginext.Context) {
	rideID, ok := pathUUID(c, "invalid ride id")
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Reserve(c.Request.Context(), rideID, req.RiderID, req.SeatsBooked)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, ok := pathUUID(c, "invalid booking id")
	if !ok {
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), bookingID, req.RiderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetRiderBookings(c *ginext.Context) {
	riderID, ok := pathUUID(c, "invalid rider id")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByRider(c.Request.Context(), riderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Reviews and ratings

func (h *Handler) SubmitReview(c *ginext.Context) {
	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.reviewService.Submit(c.Request.Context(), domain.SubmitReviewInput{
		TargetUserID: req.TargetUserID,
		ReviewerID:   req.ReviewerID,
		RideID:       req.RideID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) GetUserReviews(c *ginext.Context) {
	userID, ok := pathUUID(c, "invalid user id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByTarget(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserRating(c *ginext.Context) {
	userID, ok := pathUUID(c, "invalid user id")
	if !ok {
		return
	}

	rating, err := h.ratingService.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingResponse(rating))
}

func pathUUID(c *ginext.Context, msg string) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id.String(), true
}

func toPlace(p dto.PlaceRequest) domain.Place {
	return domain.Place{
		Name:    p.Name,
		Address: p.Address,
		Point:   domain.Point{Lat: *p.Lat, Lng: *p.Lng},
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	if remaining, ok := domain.RemainingSeats(err); ok {
		c.JSON(http.StatusConflict, dto.CapacityErrorResponse{Error: err.Error(), Remaining: remaining})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateReview),
		errors.Is(err, domain.ErrRideNotBookable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrBookingNotActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidReview):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTransientStore):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage temporarily unavailable, retry later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
