package ports

import (
	"context"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type EventPublisher interface {
	RidePublished(ctx context.Context, ride *domain.Ride)
	RideStatusChanged(ctx context.Context, ride *domain.Ride)
	BookingConfirmed(ctx context.Context, booking *domain.Booking)
	BookingCancelled(ctx context.Context, booking *domain.Booking)
	ReviewSubmitted(ctx context.Context, review *domain.Review, rating *domain.UserRating)
}
