package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

func TestUpdateBookingStatus_ConfirmNotifiesAdmins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := NewCreateBooking(f.deps).Execute(ctx, f.input(10, f.renter.ID, date(7, 1), date(7, 8)))
	require.NoError(t, err)

	updated, err := NewUpdateBookingStatus(f.deps).Execute(ctx, b.ID, "confirmed", as(f.owner))
	require.NoError(t, err)
	assert.Equal(t, string(domainbooking.StatusConfirmed), updated.Status)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, "Sea Breeze", updated.Boat.Name)

	events := f.notifier.events()
	require.Len(t, events, 2)
	assert.Equal(t, "approved", events[1].event)
	assert.Equal(t, []string{"admin@example.com"}, events[1].recipients)
}

func TestUpdateBookingStatus_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewUpdateBookingStatus(f.deps)

	_, err := uc.Execute(ctx, "BK-missing", "confirmed", as(f.admin))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))

	b, err := NewCreateBooking(f.deps).Execute(ctx, f.input(10, f.renter.ID, date(7, 1), date(7, 8)))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, b.ID, "shipped", as(f.admin))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))

	_, err = uc.Execute(ctx, b.ID, "completed", as(f.admin))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, b.ID, "pending", as(f.admin))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestUpdateBookingStatus_CancelRemovesPeriod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := NewCreateBooking(f.deps).Execute(ctx, f.input(10, f.renter.ID, date(7, 1), date(7, 8)))
	require.NoError(t, err)

	updated, err := NewUpdateBookingStatus(f.deps).Execute(ctx, b.ID, "Cancelled", as(f.admin))
	require.NoError(t, err)
	assert.Equal(t, string(domainbooking.StatusCancelled), updated.Status)
	assert.Zero(t, f.store.PeriodCount())

	_, err = NewUpdateBookingStatus(f.deps).Execute(ctx, b.ID, "confirmed", as(f.admin))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestBookingWrites_OwnerOfAnotherBoatIsForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := NewCreateBooking(f.deps).Execute(ctx, f.input(10, f.renter.ID, date(7, 1), date(7, 8)))
	require.NoError(t, err)

	stranger := f.store.AddUser(models.User{Name: "Sam", Email: "sam@example.com", Role: models.RoleOwner})

	_, err = NewUpdateBookingStatus(f.deps).Execute(ctx, b.ID, "confirmed", as(stranger))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)

	_, err = NewUpdateBookingStatus(f.deps).Execute(ctx, b.ID, "cancelled", as(stranger))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)

	ok, err := NewCancelBooking(f.deps).Execute(ctx, b.ID, as(stranger))
	assert.False(t, ok)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)

	_, err = NewUpdateBookingStatus(f.deps).Execute(ctx, b.ID, "confirmed", as(f.renter))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "got %v", err)

	stored, err := f.store.Bookings().GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domainbooking.StatusPending), stored.Status)
	assert.Equal(t, 1, f.store.PeriodCount())

	ok, err = NewCancelBooking(f.deps).Execute(ctx, b.ID, as(f.owner))
	require.NoError(t, err)
	assert.True(t, ok, "the boat's owner may cancel")
}
