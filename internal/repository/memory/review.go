package memory

import (
	"context"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
)

type ReviewRepository struct {
	store *Store
}

// CreateWithProjection holds the target's lock for the uniqueness check,
// the append and the projection rewrite.
func (r *ReviewRepository) CreateWithProjection(ctx context.Context, review *domain.Review) (*domain.UserRating, error) {
	slot := r.store.target(review.TargetUserID)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := reviewKey{rideID: review.RideID, reviewerID: review.ReviewerID}
	if _, dup := slot.seen[key]; dup {
		return nil, domain.ErrDuplicateReview
	}

	ratings := make([]int, 0, len(slot.reviews)+1)
	for _, rv := range slot.reviews {
		ratings = append(ratings, rv.Rating)
	}
	ratings = append(ratings, review.Rating)

	stored := *review
	slot.seen[key] = struct{}{}
	slot.reviews = append(slot.reviews, &stored)
	slot.rating = domain.AggregateRatings(review.TargetUserID, ratings, time.Now())

	rating := slot.rating
	return &rating, nil
}

func (r *ReviewRepository) ListByTarget(_ context.Context, targetID string) ([]*domain.Review, error) {
	slot, ok := r.store.targets.Load(targetID)
	if !ok {
		return []*domain.Review{}, nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	res := make([]*domain.Review, 0, len(slot.reviews))
	for i := len(slot.reviews) - 1; i >= 0; i-- {
		cp := *slot.reviews[i]
		res = append(res, &cp)
	}
	return res, nil
}

type RatingRepository struct {
	store *Store
}

func (r *RatingRepository) GetByUser(_ context.Context, userID string) (*domain.UserRating, error) {
	slot, ok := r.store.targets.Load(userID)
	if !ok {
		return nil, domain.ErrRatingNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if len(slot.reviews) == 0 {
		return nil, domain.ErrRatingNotFound
	}
	rating := slot.rating
	return &rating, nil
}
