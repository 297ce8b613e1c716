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

// ReviewService appends to the review ledger and keeps the rating
// projection in step with it.
type ReviewService struct {
	reviewRepo ports.ReviewRepo
	validator  ports.ParticipationValidator
	cache      ports.RatingCache
	publisher  ports.EventPublisher
	logger     logger.Logger
}

func NewReviewService(
	reviewRepo ports.ReviewRepo,
	validator ports.ParticipationValidator,
	cache ports.RatingCache,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		validator:  validator,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *ReviewService) Submit(ctx context.Context, input domain.SubmitReviewInput) (*domain.Review, error) {
	review, err := domain.NewReview(input, time.Now())
	if err != nil {
		return nil, err
	}

	ok, err := s.validator.Validate(ctx, review.RideID, review.ReviewerID, review.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("validate participation: %w", err)
	}
	if !ok {
		return nil, domain.ErrForbidden
	}

	rating, err := s.reviewRepo.CreateWithProjection(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.cache.Set(ctx, rating)
	metrics.ReviewSubmitted()

	s.logger.Info("review submitted",
		logger.String("review_id", review.ID),
		logger.String("ride_id", review.RideID),
		logger.String("target_user_id", review.TargetUserID),
		logger.Int("rating", review.Rating),
		logger.Any("average_rating", rating.AverageRating),
		logger.Int("rides_completed", rating.RidesCompleted),
	)

	go s.publisher.ReviewSubmitted(context.WithoutCancel(ctx), review, rating)

	return review, nil
}

func (s *ReviewService) ListByTarget(ctx context.Context, targetID string) ([]*domain.Review, error) {
	return s.reviewRepo.ListByTarget(ctx, domain.CanonicalID(targetID))
}
