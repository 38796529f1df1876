package repository

import (
	"context"

	"gorm.io/gorm"

	domainboat "github.com/BruksfildServices01/boat-rental/internal/domain/boat"
	domainuser "github.com/BruksfildServices01/boat-rental/internal/domain/user"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return domainuser.ErrEmailTaken
	}
	return err
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

type BoatGormRepository struct {
	db *gorm.DB
}

func NewBoatGormRepository(db *gorm.DB) *BoatGormRepository {
	return &BoatGormRepository{db: db}
}

func (r *BoatGormRepository) GetBoat(ctx context.Context, id uint) (*models.Boat, error) {
	var b models.Boat
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BoatGormRepository) SetImage(ctx context.Context, id uint, url string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Boat{}).
		Where("id = ?", id).
		Update("image", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

var _ domainuser.Repository = (*UserGormRepository)(nil)
var _ domainboat.Repository = (*BoatGormRepository)(nil)
