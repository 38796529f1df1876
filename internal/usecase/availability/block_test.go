package availability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/BruksfildServices01/boat-rental/internal/domain"
	domain "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
	"github.com/BruksfildServices01/boat-rental/internal/usecase/availability"
)

func TestCalendar_BookingHoldIsNotRemovable(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	cal := availability.NewCalendar(e.store.Availability(), e.cache, nil)

	b := e.book(t, date(7, 1), date(7, 8))
	require.Equal(t, 1, e.store.PeriodCount())

	stored, err := e.store.Availability().ListPeriods(ctx, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	hold := stored[0]
	require.True(t, domain.IsBookingHold(hold))
	invalidated := e.cache.invalidated

	ok, err := cal.RemoveBlock(ctx, 10, hold.StartDate, e.actor)
	require.NoError(t, err)
	assert.False(t, ok)

	admin := core.Actor{ID: 999, Role: models.RoleAdmin}
	ok, err = cal.UnblockByID(ctx, hold.ID, admin)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, e.store.PeriodCount(), "the hold stays with its booking")
	assert.Equal(t, invalidated, e.cache.invalidated)

	res, err := availability.NewCheckAvailability(e.store.Availability()).Execute(ctx, availability.CheckInput{
		BoatID: 10,
		Start:  date(7, 2),
		End:    date(7, 3),
	})
	require.NoError(t, err)
	assert.False(t, res.IsAvailable)

	periods, err := availability.NewListUnavailable(e.store.Availability(), e.cache).
		Execute(ctx, availability.ListUnavailableInput{BoatID: 10})
	require.NoError(t, err)
	require.Len(t, periods, 1)
	id, _ := periods[0].Reference.BookingID()
	assert.Equal(t, b.ID, id)
}

func TestCalendar_RemoveBlockSkipsHoldSharingTheStart(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	cal := availability.NewCalendar(e.store.Availability(), e.cache, nil)

	e.book(t, date(7, 1), date(7, 8))
	_, err := cal.AddBlock(ctx, availability.SetPeriodInput{BoatID: 10, Start: date(7, 1), End: date(7, 3), Actor: e.actor})
	require.NoError(t, err)
	require.Equal(t, 2, e.store.PeriodCount())

	ok, err := cal.RemoveBlock(ctx, 10, date(7, 1), e.actor)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := e.store.Availability().ListPeriods(ctx, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, domain.IsBookingHold(stored[0]), "the block went, the hold stayed")
}

func TestCalendar_OnlyTheBoatsOwnerOrAnAdminMayWrite(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	cal := availability.NewCalendar(e.store.Availability(), e.cache, nil)

	stranger := e.store.AddUser(models.User{Name: "Sam", Email: "sam@example.com", Role: models.RoleOwner})
	other := core.Actor{ID: stranger.ID, Role: stranger.Role}
	renter := core.Actor{ID: e.renter.ID, Role: e.renter.Role}

	for _, actor := range []core.Actor{other, renter, {}} {
		_, err := cal.AddBlock(ctx, availability.SetPeriodInput{BoatID: 10, Start: date(8, 1), End: date(8, 3), Actor: actor})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)

		_, err = cal.SetPeriod(ctx, availability.SetPeriodInput{BoatID: 10, Start: date(8, 1), End: date(8, 3), Actor: actor})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)
	}
	assert.Zero(t, e.store.PeriodCount())

	p, err := cal.AddBlock(ctx, availability.SetPeriodInput{BoatID: 10, Start: date(8, 1), End: date(8, 3), Actor: e.actor})
	require.NoError(t, err)

	ok, err := cal.RemoveBlock(ctx, 10, date(8, 1), other)
	assert.False(t, ok)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)

	ok, err = cal.UnblockByID(ctx, p.ID, other)
	assert.False(t, ok)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)
	assert.Equal(t, 1, e.store.PeriodCount())

	admin := core.Actor{ID: 999, Role: models.RoleAdmin}
	ok, err = cal.UnblockByID(ctx, p.ID, admin)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, e.store.PeriodCount())
}
