package availability_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/boat-rental/internal/infra/cache"
	"github.com/BruksfildServices01/boat-rental/internal/infra/memory"
	"github.com/BruksfildServices01/boat-rental/internal/models"
	"github.com/BruksfildServices01/boat-rental/internal/usecase/availability"
	"github.com/BruksfildServices01/boat-rental/internal/usecase/booking"
)

// afterBookingsRead runs hook once, right after the bookings of a boat have
// been read and before the caller gets them back.
type afterBookingsRead struct {
	*memory.AvailabilityRepository
	once sync.Once
	hook func()
}

func (r *afterBookingsRead) ListActiveBookings(ctx context.Context, boatID uint) ([]models.Booking, error) {
	out, err := r.AvailabilityRepository.ListActiveBookings(ctx, boatID)
	r.once.Do(r.hook)
	return out, err
}

func TestListUnavailable_BookingCommittedDuringMissIsNotHiddenByCache(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	calendarCache := cache.NewLocalCache(time.Minute)

	repo := &afterBookingsRead{AvailabilityRepository: e.store.Availability()}
	repo.hook = func() {
		_, err := booking.NewCreateBooking(booking.Deps{
			Repo:  e.store.Bookings(),
			Cache: calendarCache,
		}).Execute(ctx, booking.CreateBookingInput{
			BoatID:   10,
			RenterID: e.renter.ID,
			Start:    date(7, 1),
			End:      date(7, 8),
		})
		require.NoError(t, err)
	}

	list := availability.NewListUnavailable(repo, calendarCache)

	first, err := list.Execute(ctx, availability.ListUnavailableInput{BoatID: 10})
	require.NoError(t, err)
	assert.Empty(t, first, "read happened before the booking")
	require.Equal(t, 1, e.store.BookingCount())

	second, err := list.Execute(ctx, availability.ListUnavailableInput{BoatID: 10})
	require.NoError(t, err)
	require.Len(t, second, 1, "pre-booking calendar must not have been cached")

	third, err := list.Execute(ctx, availability.ListUnavailableInput{BoatID: 10})
	require.NoError(t, err)
	assert.Equal(t, second, third)
}
