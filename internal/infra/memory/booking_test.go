package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

func at(d int) time.Time {
	return time.Date(2024, 7, d, 0, 0, 0, 0, time.UTC)
}

func insert(t *testing.T, s *Store, b models.Booking) error {
	t.Helper()
	return s.Bookings().WithinTx(context.Background(), func(tx domainbooking.Tx) error {
		return tx.CreateBooking(context.Background(), &b)
	})
}

func TestCreateBooking_RejectsOverlapLikeTheExclusionConstraints(t *testing.T) {
	s := NewStore()
	pending := string(domainbooking.StatusPending)
	require.NoError(t, insert(t, s, models.Booking{ID: "BK1", BoatID: 10, RenterID: 1, StartDate: at(1), EndDate: at(8), Status: pending}))

	for _, tc := range []struct {
		name       string
		booking    models.Booking
		constraint string
	}{
		{"same boat", models.Booking{ID: "BK2", BoatID: 10, RenterID: 2, StartDate: at(3), EndDate: at(6), Status: pending}, "bookings_boat_no_overlap"},
		{"same renter", models.Booking{ID: "BK3", BoatID: 20, RenterID: 1, StartDate: at(7), EndDate: at(9), Status: pending}, "bookings_renter_no_overlap"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := insert(t, s, tc.booking)
			var pgErr *pgconn.PgError
			require.True(t, errors.As(err, &pgErr), "got %v", err)
			assert.Equal(t, "23P01", pgErr.Code)
			assert.Equal(t, tc.constraint, pgErr.ConstraintName)
		})
	}

	require.NoError(t, insert(t, s, models.Booking{ID: "BK4", BoatID: 10, RenterID: 2, StartDate: at(8), EndDate: at(10), Status: pending}),
		"touching ranges do not overlap")
	require.NoError(t, insert(t, s, models.Booking{ID: "BK5", BoatID: 10, RenterID: 3, StartDate: at(2), EndDate: at(4), Status: string(domainbooking.StatusCancelled)}))
	assert.Equal(t, 3, s.BookingCount())
}

func TestDeletePeriod_LeavesBookingHolds(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repo := s.Availability()

	ref := string(domainavailability.RefBooking)
	bookingID := "BK1"
	hold := &models.BoatAvailability{BoatID: 10, StartDate: at(1), EndDate: at(8), ReferenceType: &ref, ReferenceID: &bookingID}
	require.NoError(t, repo.CreatePeriod(ctx, hold))

	ok, err := repo.DeletePeriodByStart(ctx, 10, at(1))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.DeletePeriod(ctx, hold.ID)
	assert.Error(t, err)

	got, err := repo.GetPeriod(ctx, hold.ID)
	require.NoError(t, err)
	assert.Equal(t, hold.ID, got.ID)
	assert.Equal(t, 1, s.PeriodCount())
}
