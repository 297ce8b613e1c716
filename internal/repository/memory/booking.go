package memory

import (
	"context"
	"slices"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) (*domain.Ride, error) {
	slot, ok := r.store.rides.Load(b.RideID)
	if !ok {
		return nil, domain.ErrRideNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if slot.ride.Status != domain.RideStatusScheduled {
		return nil, domain.ErrRideNotBookable
	}
	if slot.ride.AvailableSeats < b.SeatsBooked {
		return nil, &domain.InsufficientCapacityError{
			Requested: b.SeatsBooked,
			Remaining: slot.ride.AvailableSeats,
		}
	}

	slot.ride.AvailableSeats -= b.SeatsBooked
	slot.ride.UpdatedAt = time.Now().UTC()

	stored := *b
	slot.bookings = append(slot.bookings, &stored)
	r.store.bookingRide.Store(b.ID, b.RideID)

	ride := slot.ride
	return &ride, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID, riderID string) (*domain.Booking, error) {
	rideID, ok := r.store.bookingRide.Load(bookingID)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	slot, ok := r.store.rides.Load(rideID)
	if !ok {
		return nil, domain.ErrRideNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(slot.bookings, func(b *domain.Booking) bool { return b.ID == bookingID })
	if idx < 0 || slot.bookings[idx].RiderID != riderID {
		return nil, domain.ErrBookingNotFound
	}
	b := slot.bookings[idx]
	if b.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotActive
	}
	if slot.ride.Status != domain.RideStatusScheduled {
		return nil, domain.ErrRideNotBookable
	}

	now := time.Now().UTC()
	b.Status = domain.BookingStatusCancelled
	b.UpdatedAt = now
	slot.ride.AvailableSeats += b.SeatsBooked
	slot.ride.UpdatedAt = now

	cp := *b
	return &cp, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	rideID, ok := r.store.bookingRide.Load(id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	slot, ok := r.store.rides.Load(rideID)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	for _, b := range slot.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) ListByRider(_ context.Context, riderID string) ([]*domain.Booking, error) {
	var res []*domain.Booking

	r.store.rides.Range(func(_ string, slot *rideSlot) bool {
		slot.mu.Lock()
		res = append(res, cloneBookings(slot.bookings, func(b *domain.Booking) bool {
			return b.RiderID == riderID
		})...)
		slot.mu.Unlock()
		return true
	})

	slices.SortFunc(res, func(a, b *domain.Booking) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return res, nil
}

func (r *BookingRepository) ListByRide(_ context.Context, rideID string) ([]*domain.Booking, error) {
	slot, ok := r.store.rides.Load(rideID)
	if !ok {
		return nil, domain.ErrRideNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return cloneBookings(slot.bookings, func(b *domain.Booking) bool {
		return b.Status.IsActive()
	}), nil
}

func (r *BookingRepository) HasCompleted(_ context.Context, rideID, riderID string) (bool, error) {
	slot, ok := r.store.rides.Load(rideID)
	if !ok {
		return false, nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	return slices.ContainsFunc(slot.bookings, func(b *domain.Booking) bool {
		return b.RiderID == riderID && b.Status == domain.BookingStatusCompleted
	}), nil
}
