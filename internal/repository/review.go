package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	tx       txRunner
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB, strategy retry.Strategy) *ReviewRepository {
	return &ReviewRepository{
		db:       db,
		tx:       txRunner{db: db, strategy: strategy},
		strategy: strategy,
	}
}

// CreateWithProjection locks the target's projection row, so reviews of the
// same user commit one at a time, and rewrites it from the ledger.
func (r *ReviewRepository) CreateWithProjection(ctx context.Context, review *domain.Review) (*domain.UserRating, error) {
	var rating *domain.UserRating

	err := r.tx.run(ctx, func(tx *sql.Tx) error {
		now := time.Now().UTC()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_ratings (user_id, average_rating, rides_completed, updated_at)
			 VALUES ($1, 0, 0, $2)
			 ON CONFLICT (user_id) DO NOTHING`,
			review.TargetUserID, now,
		); err != nil {
			return fmt.Errorf("ensure rating row: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`SELECT 1 FROM user_ratings WHERE user_id = $1 FOR UPDATE`, review.TargetUserID,
		); err != nil {
			return fmt.Errorf("lock rating row: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO reviews (id, target_user_id, reviewer_id, ride_id, rating, comment, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			review.ID, review.TargetUserID, review.ReviewerID, review.RideID,
			review.Rating, review.Comment, review.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateReview
			}
			return fmt.Errorf("insert review: %w", err)
		}

		var (
			avg   float64
			count int
		)
		if err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0), COUNT(*)
			 FROM reviews WHERE target_user_id = $1`,
			review.TargetUserID,
		).Scan(&avg, &count); err != nil {
			return fmt.Errorf("aggregate reviews: %w", err)
		}

		rating = &domain.UserRating{}
		if err = tx.QueryRowContext(ctx,
			`UPDATE user_ratings
			 SET average_rating = $2, rides_completed = $3, updated_at = $4
			 WHERE user_id = $1
			 RETURNING user_id, average_rating, rides_completed, updated_at`,
			review.TargetUserID, avg, count, now,
		).Scan(&rating.UserID, &rating.AverageRating, &rating.RidesCompleted, &rating.UpdatedAt); err != nil {
			return fmt.Errorf("update rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rating, nil
}

func (r *ReviewRepository) ListByTarget(ctx context.Context, targetID string) ([]*domain.Review, error) {
	query := `SELECT id, target_user_id, reviewer_id, ride_id, rating, comment, created_at
              FROM reviews
              WHERE target_user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, targetID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err = rows.Scan(
			&rv.ID, &rv.TargetUserID, &rv.ReviewerID, &rv.RideID,
			&rv.Rating, &rv.Comment, &rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

type RatingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRatingRepo(db *dbpg.DB, strategy retry.Strategy) *RatingRepository {
	return &RatingRepository{db: db, strategy: strategy}
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID string) (*domain.UserRating, error) {
	query := `SELECT user_id, average_rating, rides_completed, updated_at
              FROM user_ratings
              WHERE user_id = $1 AND rides_completed > 0`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}

	var ur domain.UserRating
	if err = row.Scan(&ur.UserID, &ur.AverageRating, &ur.RidesCompleted, &ur.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, fmt.Errorf("scan rating: %w", err)
	}

	return &ur, nil
}
