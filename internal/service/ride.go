package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/metrics"
	"github.com/tendolkarurja/IPD/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RideService struct {
	rideRepo    ports.RideRepo
	bookingRepo ports.BookingRepo
	publisher   ports.EventPublisher
	staleAfter  time.Duration
	logger      logger.Logger
}

func NewRideService(
	rideRepo ports.RideRepo,
	bookingRepo ports.BookingRepo,
	publisher ports.EventPublisher,
	staleAfter time.Duration,
	logger logger.Logger,
) *RideService {
	return &RideService{
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
		staleAfter:  staleAfter,
		logger:      logger,
	}
}

func (s *RideService) Publish(ctx context.Context, input domain.PublishRideInput) (*domain.Ride, error) {
	ride, err := domain.NewRide(input, time.Now())
	if err != nil {
		return nil, err
	}

	if err = s.rideRepo.Create(ctx, ride); err != nil {
		return nil, fmt.Errorf("create ride: %w", err)
	}

	s.logger.Info("ride published",
		logger.String("ride_id", ride.ID),
		logger.String("driver_id", ride.DriverID),
		logger.Time("departure_time", ride.DepartureTime),
		logger.Int("total_seats", ride.TotalSeats),
	)

	go s.publisher.RidePublished(context.WithoutCancel(ctx), ride)

	return ride, nil
}

func (s *RideService) GetDetails(ctx context.Context, id string) (*domain.RideDetails, error) {
	id = domain.CanonicalID(id)
	ride, err := s.rideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByRide(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.RideDetails{Ride: *ride, Bookings: make([]domain.Booking, 0, len(bookings))}
	for _, b := range bookings {
		details.Bookings = append(details.Bookings, *b)
	}

	return details, nil
}

func (s *RideService) Start(ctx context.Context, id string) (*domain.Ride, error) {
	return s.transition(ctx, id, domain.RideStatusInProgress)
}

// Complete finishes the ride; its CONFIRMED bookings become COMPLETED.
func (s *RideService) Complete(ctx context.Context, id string) (*domain.Ride, error) {
	return s.transition(ctx, id, domain.RideStatusCompleted)
}

// Cancel retires a SCHEDULED ride and cancels its active bookings.
func (s *RideService) Cancel(ctx context.Context, id string) (*domain.Ride, error) {
	return s.transition(ctx, id, domain.RideStatusCancelled)
}

func (s *RideService) transition(ctx context.Context, id string, to domain.RideStatus) (*domain.Ride, error) {
	ride, err := s.rideRepo.Transition(ctx, domain.CanonicalID(id), to)
	if err != nil {
		return nil, fmt.Errorf("transition ride to %s: %w", to, err)
	}

	metrics.RideTransition(string(to))
	s.logger.Info("ride status changed",
		logger.String("ride_id", ride.ID),
		logger.String("status", string(ride.Status)),
	)

	go s.publisher.RideStatusChanged(context.WithoutCancel(ctx), ride)

	return ride, nil
}

// RetireStale cancels SCHEDULED rides that departed longer than staleAfter ago.
func (s *RideService) RetireStale(ctx context.Context) ([]*domain.Ride, error) {
	cutoff := time.Now().UTC().Add(-s.staleAfter)

	retired, err := s.rideRepo.RetireStale(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("retire stale rides: %w", err)
	}

	if len(retired) > 0 {
		s.logger.Info("stale rides retired",
			logger.Int("count", len(retired)),
		)
		go s.notifyRetired(context.WithoutCancel(ctx), retired)
	}

	return retired, nil
}

func (s *RideService) notifyRetired(ctx context.Context, rides []*domain.Ride) {
	for _, r := range rides {
		metrics.RideTransition(string(r.Status))
		s.publisher.RideStatusChanged(ctx, r)
	}
}
