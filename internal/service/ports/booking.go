package ports

import (
	"context"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type BookingRepo interface {
	// Reserve locks the ride, decrements its seats and inserts b atomically.
	Reserve(ctx context.Context, b *domain.Booking) (*domain.Ride, error)
	Cancel(ctx context.Context, bookingID, riderID string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByRider(ctx context.Context, riderID string) ([]*domain.Booking, error)
	ListByRide(ctx context.Context, rideID string) ([]*domain.Booking, error)
	HasCompleted(ctx context.Context, rideID, riderID string) (bool, error)
}
