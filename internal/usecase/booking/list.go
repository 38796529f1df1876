package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type ListBookings struct {
	repo domainbooking.Repository
}

func NewListBookings(repo domainbooking.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute filters bookings. The date window keeps bookings touching
// [StartDate, EndDate], both ends inclusive.
func (uc *ListBookings) Execute(
	ctx context.Context,
	f domainbooking.Filters,
) ([]models.Booking, error) {
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateRange)
	}
	return uc.repo.ListBookings(ctx, f)
}

func (uc *ListBookings) ByRenter(ctx context.Context, renterID uint) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, domainbooking.Filters{RenterID: &renterID})
}

func (uc *ListBookings) ByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, domainbooking.Filters{OwnerID: &ownerID})
}

func (uc *ListBookings) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := uc.repo.GetBooking(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return b, err
}
