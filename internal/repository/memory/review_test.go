package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendolkarurja/IPD/internal/domain"
)

func newReview(t *testing.T, target, reviewer, ride string, rating int) *domain.Review {
	t.Helper()
	r, err := domain.NewReview(domain.SubmitReviewInput{
		TargetUserID: target,
		ReviewerID:   reviewer,
		RideID:       ride,
		Rating:       rating,
	}, time.Now())
	require.NoError(t, err)
	return r
}

func TestReviews_ExampleProjection(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Reviews().CreateWithProjection(ctx, newReview(t, "u", "a", "r1", 4))
	require.NoError(t, err)
	proj, err := s.Reviews().CreateWithProjection(ctx, newReview(t, "u", "b", "r2", 2))
	require.NoError(t, err)

	assert.Equal(t, 3.0, proj.AverageRating)
	assert.Equal(t, 2, proj.RidesCompleted)

	stored, err := s.Ratings().GetByUser(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, *proj, *stored)
}

func TestReviews_DuplicateRejectedWithoutProjectionChange(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.Reviews().CreateWithProjection(ctx, newReview(t, "u", "a", "r1", 5))
	require.NoError(t, err)

	_, err = s.Reviews().CreateWithProjection(ctx, newReview(t, "u", "a", "r1", 1))
	require.ErrorIs(t, err, domain.ErrDuplicateReview)

	stored, err := s.Ratings().GetByUser(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, first.AverageRating, stored.AverageRating)
	assert.Equal(t, 1, stored.RidesCompleted)

	reviews, err := s.Reviews().ListByTarget(ctx, "u")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviews_ConcurrentProjectionMatchesLedger(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := domain.NewReview(domain.SubmitReviewInput{
				TargetUserID: "u",
				ReviewerID:   fmt.Sprintf("rider-%d", i%10),
				RideID:       fmt.Sprintf("ride-%d", i%25),
				Rating:       i%5 + 1,
			}, time.Now())
			if err != nil {
				t.Error(err)
				return
			}
			if _, err = s.Reviews().CreateWithProjection(ctx, r); err != nil && !errors.Is(err, domain.ErrDuplicateReview) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	reviews, err := s.Reviews().ListByTarget(ctx, "u")
	require.NoError(t, err)
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	proj, err := s.Ratings().GetByUser(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, len(reviews), proj.RidesCompleted)
	assert.Equal(t, domain.RoundRating(float64(sum)/float64(len(reviews))), proj.AverageRating)
}

func TestRatings_UnknownUser(t *testing.T) {
	s := NewStore()

	_, err := s.Ratings().GetByUser(context.Background(), "nobody")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
