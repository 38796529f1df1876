package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

const activeBooking = "status <> 'cancelled'"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domainbooking.Tx) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookingTx{db: tx})
	})
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Boat.Owner").
		Preload("Renter").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domainbooking.Filters,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("Boat.Owner").
		Preload("Renter")

	if f.RenterID != nil {
		q = q.Where("bookings.renter_id = ?", *f.RenterID)
	}
	if f.OwnerID != nil {
		q = q.Joins("JOIN boats ON boats.id = bookings.boat_id").
			Where("boats.owner_id = ?", *f.OwnerID)
	}
	if f.Status != nil {
		q = q.Where("bookings.status = ?", string(*f.Status))
	}
	if f.StartDate != nil {
		q = q.Where("bookings.end_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("bookings.start_date <= ?", *f.EndDate)
	}

	var list []models.Booking
	if err := q.Order("bookings.start_date ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BookingGormRepository) ListAdminEmails(
	ctx context.Context,
) ([]string, error) {

	var emails []string
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ? AND email <> ''", models.RoleAdmin).
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// --------------------------------------------------
// Transactional writes
// --------------------------------------------------

type bookingTx struct {
	db *gorm.DB
}

func (t *bookingTx) LockBoat(
	ctx context.Context,
	boatID uint,
) (*models.Boat, error) {

	var boat models.Boat
	if err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Owner").
		First(&boat, boatID).Error; err != nil {
		return nil, notFound(err)
	}
	return &boat, nil
}

func (t *bookingTx) HasBlockedOverlap(
	ctx context.Context,
	boatID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := t.db.WithContext(ctx).
		Model(&models.BoatAvailability{}).
		Where(
			"boat_id = ? AND is_available = false AND start_date < ? AND end_date > ?",
			boatID, end, start,
		).
		Where(notBookingHold).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *bookingTx) HasBoatBookingOverlap(
	ctx context.Context,
	boatID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := t.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"boat_id = ? AND "+activeBooking+" AND start_date < ? AND end_date > ?",
			boatID, end, start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *bookingTx) HasRenterBookingOverlap(
	ctx context.Context,
	renterID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := t.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"renter_id = ? AND "+activeBooking+" AND start_date < ? AND end_date > ?",
			renterID, end, start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *bookingTx) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return t.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (t *bookingTx) CreatePeriod(
	ctx context.Context,
	p *models.BoatAvailability,
) error {
	return t.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (t *bookingTx) GetBookingForUpdate(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (t *bookingTx) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return t.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (t *bookingTx) DeleteBookingPeriod(
	ctx context.Context,
	bookingID string,
) (bool, error) {

	res := t.db.WithContext(ctx).
		Where("reference_type = ? AND reference_id = ?", "booking", bookingID).
		Delete(&models.BoatAvailability{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domainbooking.Repository = (*BookingGormRepository)(nil)
var _ domainbooking.Tx = (*bookingTx)(nil)
