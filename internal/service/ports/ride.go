package ports

import (
	"context"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type RideRepo interface {
	Create(ctx context.Context, ride *domain.Ride) error
	GetByID(ctx context.Context, id string) (*domain.Ride, error)
	// Transition moves a ride to the next lifecycle state and cascades the
	// change to its bookings in the same transaction.
	Transition(ctx context.Context, id string, to domain.RideStatus) (*domain.Ride, error)
	RetireStale(ctx context.Context, departedBefore time.Time) ([]*domain.Ride, error)
}

// GeoTimeIndex answers radius + time-window + capacity queries over SCHEDULED rides.
type GeoTimeIndex interface {
	FindCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error)
}
