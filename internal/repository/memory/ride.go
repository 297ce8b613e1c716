package memory

import (
	"context"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type RideRepository struct {
	store *Store
}

func (r *RideRepository) Create(_ context.Context, ride *domain.Ride) error {
	r.store.rides.Store(ride.ID, &rideSlot{ride: *ride})
	return nil
}

func (r *RideRepository) GetByID(_ context.Context, id string) (*domain.Ride, error) {
	slot, ok := r.store.rides.Load(id)
	if !ok {
		return nil, domain.ErrRideNotFound
	}

	slot.mu.Lock()
	ride := slot.ride
	slot.mu.Unlock()

	return &ride, nil
}

func (r *RideRepository) Transition(ctx context.Context, id string, to domain.RideStatus) (*domain.Ride, error) {
	slot, ok := r.store.rides.Load(id)
	if !ok {
		return nil, domain.ErrRideNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !slot.ride.Status.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}

	applyTransition(slot, to, time.Now().UTC())

	ride := slot.ride
	return &ride, nil
}

func (r *RideRepository) RetireStale(ctx context.Context, departedBefore time.Time) ([]*domain.Ride, error) {
	var retired []*domain.Ride
	now := time.Now().UTC()

	r.store.rides.Range(func(_ string, slot *rideSlot) bool {
		if ctx.Err() != nil {
			return false
		}

		slot.mu.Lock()
		if slot.ride.Status == domain.RideStatusScheduled && slot.ride.DepartureTime.Before(departedBefore) {
			applyTransition(slot, domain.RideStatusCancelled, now)
			ride := slot.ride
			retired = append(retired, &ride)
		}
		slot.mu.Unlock()

		return true
	})

	if err := ctx.Err(); err != nil {
		return retired, err
	}
	return retired, nil
}

// applyTransition must be called with slot.mu held.
func applyTransition(slot *rideSlot, to domain.RideStatus, now time.Time) {
	slot.ride.Status = to
	slot.ride.UpdatedAt = now

	for _, b := range slot.bookings {
		if b.Status != domain.BookingStatusConfirmed {
			continue
		}
		switch to {
		case domain.RideStatusCompleted:
			b.Status = domain.BookingStatusCompleted
			b.UpdatedAt = now
		case domain.RideStatusCancelled:
			b.Status = domain.BookingStatusCancelled
			b.UpdatedAt = now
			slot.ride.AvailableSeats += b.SeatsBooked
		}
	}
}
