package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type UpdateBookingStatus struct {
	Deps
	cancel *CancelBooking
}

func NewUpdateBookingStatus(deps Deps) *UpdateBookingStatus {
	deps = deps.withDefaults()
	return &UpdateBookingStatus{
		Deps:   deps,
		cancel: NewCancelBooking(deps),
	}
}

// Execute sets the status of a booking. Overlap is not re-validated. A
// booking already cancelled or completed cannot change.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID string,
	rawStatus string,
	actor domain.Actor,
) (*models.Booking, error) {

	next, err := domainbooking.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	if next == domainbooking.StatusCancelled {
		return uc.cancelAndReload(ctx, bookingID, actor)
	}

	wctx, cancel := uc.detached(ctx)
	defer cancel()

	err = uc.Repo.WithinTx(wctx, func(tx domainbooking.Tx) error {
		b, err := tx.GetBookingForUpdate(wctx, bookingID)
		if err != nil {
			return err
		}
		if err := authorize(wctx, tx, b, actor); err != nil {
			return err
		}
		if err := domainbooking.SetStatus(b, next, uc.Now()); err != nil {
			return err
		}
		return tx.SaveBooking(wctx, b)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	if err != nil {
		return nil, err
	}

	updated, err := uc.Repo.GetBooking(wctx, bookingID)
	if err != nil {
		return nil, err
	}

	if next == domainbooking.StatusConfirmed && uc.Notifier != nil {
		uc.notifyAdmins(wctx, "reservation_approved", updated, uc.Notifier.ReservationApproved)
	}

	uc.Audit.Dispatch(audit.Event{
		UserID:   actor.UserID(),
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: updated.ID,
		Metadata: map[string]any{"status": string(next)},
	})

	return updated, nil
}

// cancelAndReload keeps the linked period in step with the status.
func (uc *UpdateBookingStatus) cancelAndReload(
	ctx context.Context,
	bookingID string,
	actor domain.Actor,
) (*models.Booking, error) {

	found, err := uc.cancel.Execute(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	return uc.Repo.GetBooking(context.WithoutCancel(ctx), bookingID)
}
