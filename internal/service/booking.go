package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/metrics"
	"github.com/tendolkarurja/IPD/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService is the reservation ledger: the only writer of seat counts
// besides ride lifecycle cascades.
type BookingService struct {
	bookingRepo ports.BookingRepo
	publisher   ports.EventPublisher
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *BookingService) Reserve(ctx context.Context, rideID, riderID string, seats int) (*domain.Booking, error) {
	booking, err := domain.NewBooking(rideID, riderID, seats, time.Now())
	if err != nil {
		return nil, err
	}

	ride, err := s.bookingRepo.Reserve(ctx, booking)
	if err != nil {
		metrics.Reservation(reservationOutcome(err))
		if remaining, ok := domain.RemainingSeats(err); ok {
			s.logger.Info("reservation rejected",
				logger.String("ride_id", booking.RideID),
				logger.Int("requested", seats),
				logger.Int("remaining", remaining),
			)
		}
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	metrics.Reservation("confirmed")
	metrics.SeatsReserved(seats)
	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("ride_id", booking.RideID),
		logger.String("rider_id", booking.RiderID),
		logger.Int("seats", seats),
		logger.Int("available_seats", ride.AvailableSeats),
	)

	go s.publisher.BookingConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, riderID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Cancel(ctx, domain.CanonicalID(bookingID), domain.CanonicalID(riderID))
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("ride_id", booking.RideID),
		logger.Int("seats_returned", booking.SeatsBooked),
	)

	go s.publisher.BookingCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) ListByRider(ctx context.Context, riderID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByRider(ctx, domain.CanonicalID(riderID))
}

func reservationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientCapacity):
		return "insufficient_capacity"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRideNotBookable):
		return "not_bookable"
	case errors.Is(err, domain.ErrTransientStore):
		return "unavailable"
	default:
		return "error"
	}
}
