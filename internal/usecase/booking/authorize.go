package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainboat "github.com/BruksfildServices01/boat-rental/internal/domain/boat"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

// authorize checks the actor may manage the boat the booking is on. Admins
// skip the boat lookup.
func authorize(
	ctx context.Context,
	tx domainbooking.Tx,
	b *models.Booking,
	actor domain.Actor,
) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}

	boat, err := tx.LockBoat(ctx, b.BoatID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if err != nil {
		return err
	}
	if !domainboat.CanManage(boat, actor.ID, actor.Role) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}
