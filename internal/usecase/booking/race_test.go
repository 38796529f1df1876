package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/infra/memory"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

func TestCreateBooking_OneRenterRacingTwoBoatsGetsOneBooking(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateBooking(f.deps)

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for i := 0; i < attempts; i++ {
		boatID := uint(10)
		if i%2 == 1 {
			boatID = 20
		}
		wg.Add(1)
		go func(boatID uint) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), f.input(boatID, f.renter.ID, date(7, 1), date(7, 8)))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case httperr.IsBusiness(err, httperr.CodeRenterOverlap),
				httperr.IsBusiness(err, httperr.CodeBoatAlreadyBooked),
				httperr.IsBusiness(err, httperr.CodeBookingConflict):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(boatID)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, rejected)

	renterID := f.renter.ID
	held, err := f.store.Bookings().ListBookings(context.Background(), domainbooking.Filters{RenterID: &renterID})
	require.NoError(t, err)
	assert.Len(t, held, 1)
	assert.Equal(t, 1, f.store.PeriodCount())
}

// exclusionRepo fails every booking insert the way the postgres overlap
// constraints do when two transactions pass the checks at the same time.
type exclusionRepo struct {
	*memory.BookingRepository
}

func (r exclusionRepo) WithinTx(ctx context.Context, fn func(tx domainbooking.Tx) error) error {
	return r.BookingRepository.WithinTx(ctx, func(tx domainbooking.Tx) error {
		return fn(exclusionTx{Tx: tx})
	})
}

type exclusionTx struct {
	domainbooking.Tx
}

func (exclusionTx) CreateBooking(context.Context, *models.Booking) error {
	return &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_renter_no_overlap"}
}

func TestCreateBooking_ExclusionViolationIsAConflict(t *testing.T) {
	f := newFixture(t)
	deps := f.deps
	deps.Repo = exclusionRepo{BookingRepository: f.store.Bookings()}

	_, err := NewCreateBooking(deps).Execute(context.Background(), f.input(10, f.renter.ID, date(7, 1), date(7, 8)))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingConflict), "got %v", err)

	assert.Zero(t, f.store.BookingCount())
	assert.Zero(t, f.store.PeriodCount())
	assert.Empty(t, f.notifier.events())
}

func TestTranslatePersistErr(t *testing.T) {
	for _, code := range []string{"23P01", "23505", "40001", "40P01"} {
		err := translatePersistErr(&pgconn.PgError{Code: code})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingConflict), code)
	}

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, other, translatePersistErr(other))
}
