package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type Repository interface {
	// -------- Boat --------
	GetBoat(
		ctx context.Context,
		boatID uint,
	) (*models.Boat, error)

	// -------- Periods --------
	ListPeriods(
		ctx context.Context,
		boatID uint,
	) ([]models.BoatAvailability, error)

	// OverlappingUnavailable returns unavailable periods intersecting [start, end).
	OverlappingUnavailable(
		ctx context.Context,
		boatID uint,
		start time.Time,
		end time.Time,
	) ([]models.BoatAvailability, error)

	CreatePeriod(
		ctx context.Context,
		p *models.BoatAvailability,
	) error

	GetPeriod(
		ctx context.Context,
		id uint,
	) (*models.BoatAvailability, error)

	// DeletePeriodByStart and DeletePeriod never touch a booking hold; the
	// hold goes away with its booking.
	DeletePeriodByStart(
		ctx context.Context,
		boatID uint,
		start time.Time,
	) (bool, error)

	// DeletePeriod removes a period by id and returns the removed row.
	DeletePeriod(
		ctx context.Context,
		id uint,
	) (*models.BoatAvailability, error)

	// -------- Bookings --------
	ListActiveBookings(
		ctx context.Context,
		boatID uint,
	) ([]models.Booking, error)

	OverlappingActiveBookings(
		ctx context.Context,
		boatID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}

// Cache keeps the unfiltered unavailable calendar of a boat.
//
// A miss hands out the boat's current version. Set stores the calendar only
// while that version is still current, so a calendar read before a write can
// never be cached after the write's Invalidate.
type Cache interface {
	Get(ctx context.Context, boatID uint) (periods []Period, version int64, ok bool)
	Set(ctx context.Context, boatID uint, version int64, periods []Period)
	Invalidate(ctx context.Context, boatID uint)
}

// NopCache never hits.
type NopCache struct{}

func (NopCache) Get(context.Context, uint) ([]Period, int64, bool) { return nil, 0, false }
func (NopCache) Set(context.Context, uint, int64, []Period)        {}
func (NopCache) Invalidate(context.Context, uint)                  {}

var _ Cache = NopCache{}
