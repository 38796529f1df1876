package review

import (
	"context"

	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx writes reviews and the boat rating cache together.
type Tx interface {
	GetBoat(ctx context.Context, boatID uint) (*models.Boat, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	CreateReview(ctx context.Context, r *models.Review) error
	DeleteReview(ctx context.Context, id uint) (*models.Review, error)
	BoatRatings(ctx context.Context, boatID uint) ([]int, error)
	UpdateBoatRating(ctx context.Context, boatID uint, rating float64, count int) error
}
