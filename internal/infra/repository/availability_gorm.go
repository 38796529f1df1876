package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

func (r *AvailabilityGormRepository) GetBoat(
	ctx context.Context,
	boatID uint,
) (*models.Boat, error) {

	var boat models.Boat
	if err := r.db.WithContext(ctx).First(&boat, boatID).Error; err != nil {
		return nil, notFound(err)
	}
	return &boat, nil
}

func (r *AvailabilityGormRepository) ListPeriods(
	ctx context.Context,
	boatID uint,
) ([]models.BoatAvailability, error) {

	var list []models.BoatAvailability
	if err := r.db.WithContext(ctx).
		Where("boat_id = ?", boatID).
		Order("start_date ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AvailabilityGormRepository) OverlappingUnavailable(
	ctx context.Context,
	boatID uint,
	start time.Time,
	end time.Time,
) ([]models.BoatAvailability, error) {

	var list []models.BoatAvailability
	if err := r.db.WithContext(ctx).
		Where(
			"boat_id = ? AND is_available = false AND start_date < ? AND end_date > ?",
			boatID, end, start,
		).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AvailabilityGormRepository) CreatePeriod(
	ctx context.Context,
	p *models.BoatAvailability,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

// notBookingHold matches rows that are not the mirror of a booking.
const notBookingHold = "(COALESCE(reference_type, '') <> 'booking' OR reference_id IS NULL)"

func (r *AvailabilityGormRepository) GetPeriod(
	ctx context.Context,
	id uint,
) (*models.BoatAvailability, error) {

	var p models.BoatAvailability
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *AvailabilityGormRepository) DeletePeriodByStart(
	ctx context.Context,
	boatID uint,
	start time.Time,
) (bool, error) {

	var existing models.BoatAvailability
	err := r.db.WithContext(ctx).
		Where("boat_id = ? AND start_date = ?", boatID, start).
		Where(notBookingHold).
		Order("id ASC").
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Where(notBookingHold).
		Delete(&models.BoatAvailability{}, existing.ID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AvailabilityGormRepository) DeletePeriod(
	ctx context.Context,
	id uint,
) (*models.BoatAvailability, error) {

	var removed models.BoatAvailability
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where(notBookingHold).
		Delete(&removed, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return &removed, nil
}

func (r *AvailabilityGormRepository) ListActiveBookings(
	ctx context.Context,
	boatID uint,
) ([]models.Booking, error) {

	var list []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "boat_id", "start_date", "end_date", "status").
		Where("boat_id = ? AND "+activeBooking, boatID).
		Order("start_date ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AvailabilityGormRepository) OverlappingActiveBookings(
	ctx context.Context,
	boatID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var list []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "boat_id", "start_date", "end_date", "status").
		Where(
			"boat_id = ? AND "+activeBooking+" AND start_date < ? AND end_date > ?",
			boatID, end, start,
		).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var _ domainavailability.Repository = (*AvailabilityGormRepository)(nil)
