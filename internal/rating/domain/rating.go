package domain

import (
	"context"
)

const (
	// MinStars and MaxStars bound a rating; out-of-range input is clamped,
	// not rejected.
	MinStars = 1
	MaxStars = 5
)

// Rating is one user's vote for one program. Ratings are append-only; a user
// may rate the same program again and both entries are kept.
type Rating struct {
	UserID string `json:"user_id"`
	Stars  int    `json:"stars"`
}

type RatingRepository interface {
	Append(ctx context.Context, programID string, rating Rating) error
	FindByProgramID(ctx context.Context, programID string) ([]Rating, error)
}

// Clamp forces stars into the [MinStars, MaxStars] range.
func Clamp(stars int) int {
	if stars < MinStars {
		return MinStars
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}
