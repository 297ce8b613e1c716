package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/tendolkarurja/IPD/internal/metrics"
	"github.com/tendolkarurja/IPD/internal/service/ports"
)

type RatingService struct {
	ratingRepo ports.RatingRepo
	cache      ports.RatingCache
}

func NewRatingService(ratingRepo ports.RatingRepo, cache ports.RatingCache) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		cache:      cache,
	}
}

// Get returns the user's projection, or a zero projection for users
// nobody has reviewed yet.
func (s *RatingService) Get(ctx context.Context, userID string) (*domain.UserRating, error) {
	userID = domain.CanonicalID(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	if cached, ok := s.cache.Get(ctx, userID); ok {
		metrics.RatingCache(true)
		return cached, nil
	}
	metrics.RatingCache(false)

	rating, err := s.ratingRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get rating: %w", err)
		}
		zero := domain.AggregateRatings(userID, nil, time.Now())
		rating = &zero
	}

	s.cache.Set(ctx, rating)

	return rating, nil
}
