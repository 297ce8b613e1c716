package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 500
)

type Review struct {
	ID           string    `json:"id"`
	TargetUserID string    `json:"target_user_id"`
	ReviewerID   string    `json:"reviewer_id"`
	RideID       string    `json:"ride_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubmitReviewInput struct {
	TargetUserID string
	ReviewerID   string
	RideID       string
	Rating       int
	Comment      string
}

// NewReview checks the rating bounds and the self-review rule.
func NewReview(input SubmitReviewInput, now time.Time) (*Review, error) {
	input.TargetUserID = CanonicalID(input.TargetUserID)
	input.ReviewerID = CanonicalID(input.ReviewerID)
	input.RideID = CanonicalID(input.RideID)

	if input.TargetUserID == "" || input.ReviewerID == "" {
		return nil, fmt.Errorf("%w: target_user_id and reviewer_id are required", ErrInvalidReview)
	}
	if input.RideID == "" {
		return nil, fmt.Errorf("%w: ride_id is required", ErrInvalidReview)
	}
	if input.Rating < MinRating || input.Rating > MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidReview, MinRating, MaxRating)
	}
	if input.TargetUserID == input.ReviewerID {
		return nil, fmt.Errorf("%w: users cannot review themselves", ErrInvalidReview)
	}

	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidReview, MaxCommentLength)
	}

	return &Review{
		ID:           uuid.New().String(),
		TargetUserID: input.TargetUserID,
		ReviewerID:   input.ReviewerID,
		RideID:       input.RideID,
		Rating:       input.Rating,
		Comment:      comment,
		CreatedAt:    now.UTC(),
	}, nil
}
