package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainreview "github.com/BruksfildServices01/boat-rental/internal/domain/review"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domainreview.Tx) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&reviewTx{db: tx})
	})
}

type reviewTx struct {
	db *gorm.DB
}

func (t *reviewTx) GetBoat(ctx context.Context, boatID uint) (*models.Boat, error) {
	var boat models.Boat
	if err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&boat, boatID).Error; err != nil {
		return nil, notFound(err)
	}
	return &boat, nil
}

func (t *reviewTx) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var u models.User
	if err := t.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (t *reviewTx) CreateReview(ctx context.Context, rv *models.Review) error {
	return t.db.WithContext(ctx).Create(rv).Error
}

func (t *reviewTx) DeleteReview(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	if err := t.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, notFound(err)
	}
	if err := t.db.WithContext(ctx).Delete(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (t *reviewTx) BoatRatings(ctx context.Context, boatID uint) ([]int, error) {
	var ratings []int
	if err := t.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("boat_id = ?", boatID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (t *reviewTx) UpdateBoatRating(ctx context.Context, boatID uint, rating float64, count int) error {
	return t.db.WithContext(ctx).
		Model(&models.Boat{}).
		Where("id = ?", boatID).
		Updates(map[string]any{
			"rating":       rating,
			"review_count": count,
		}).Error
}

var _ domainreview.Repository = (*ReviewGormRepository)(nil)
