package ports

import (
	"context"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type ReviewRepo interface {
	// CreateWithProjection inserts the review and rewrites the target's
	// projection in one transaction.
	CreateWithProjection(ctx context.Context, r *domain.Review) (*domain.UserRating, error)
	ListByTarget(ctx context.Context, targetID string) ([]*domain.Review, error)
}

type RatingRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.UserRating, error)
}

type RatingCache interface {
	Get(ctx context.Context, userID string) (*domain.UserRating, bool)
	// Set must not replace an entry built from more reviews than rating.
	Set(ctx context.Context, rating *domain.UserRating)
}

// ParticipationValidator decides whether reviewer and target were
// counterparties on a completed ride.
type ParticipationValidator interface {
	Validate(ctx context.Context, rideID, reviewerID, targetID string) (bool, error)
}
