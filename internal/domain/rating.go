package domain

import (
	"math"
	"time"
)

// UserRating is the projection of all reviews targeting a user.
type UserRating struct {
	UserID         string    `json:"user_id"`
	AverageRating  float64   `json:"average_rating"`
	RidesCompleted int       `json:"rides_completed"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// AggregateRatings folds ratings into a projection. An empty slice resets it to zero.
func AggregateRatings(userID string, ratings []int, now time.Time) UserRating {
	proj := UserRating{UserID: userID, UpdatedAt: now.UTC()}
	if len(ratings) == 0 {
		return proj
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	proj.AverageRating = RoundRating(float64(sum) / float64(len(ratings)))
	proj.RidesCompleted = len(ratings)
	return proj
}
