package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type Filters struct {
	RenterID  *uint
	OwnerID   *uint
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

type Repository interface {
	// WithinTx runs fn in a single transaction. Every call made inside fn must
	// go through tx.
	WithinTx(
		ctx context.Context,
		fn func(tx Tx) error,
	) error

	// GetBooking loads a booking with its boat and owner.
	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		f Filters,
	) ([]models.Booking, error)

	ListAdminEmails(
		ctx context.Context,
	) ([]string, error)
}

// Tx is the write surface of the booking engine.
type Tx interface {
	// LockBoat loads the boat with its owner and holds a row lock until the
	// transaction ends, serialising calendar writes per boat.
	LockBoat(
		ctx context.Context,
		boatID uint,
	) (*models.Boat, error)

	// HasBlockedOverlap ignores periods that mirror a booking.
	HasBlockedOverlap(
		ctx context.Context,
		boatID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	HasBoatBookingOverlap(
		ctx context.Context,
		boatID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	HasRenterBookingOverlap(
		ctx context.Context,
		renterID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	CreatePeriod(
		ctx context.Context,
		p *models.BoatAvailability,
	) error

	GetBookingForUpdate(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// DeleteBookingPeriod removes the period held by bookingID, if any.
	DeleteBookingPeriod(
		ctx context.Context,
		bookingID string,
	) (bool, error)
}
