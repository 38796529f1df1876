package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type CancelBooking struct {
	Deps
}

func NewCancelBooking(deps Deps) *CancelBooking {
	return &CancelBooking{Deps: deps.withDefaults()}
}

// Execute cancels the booking and frees its period. It returns false when
// the booking does not exist and true, with no side effects, when it was
// already cancelled.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
	actor domain.Actor,
) (bool, error) {

	wctx, cancel := uc.detached(ctx)
	defer cancel()

	var (
		cancelled *models.Booking
		changed   bool
	)
	err := uc.Repo.WithinTx(wctx, func(tx domainbooking.Tx) error {
		b, err := tx.GetBookingForUpdate(wctx, bookingID)
		if err != nil {
			return err
		}
		if err := authorize(wctx, tx, b, actor); err != nil {
			return err
		}

		changed, err = domainbooking.Cancel(b, uc.Now())
		if err != nil || !changed {
			return err
		}

		if err := tx.SaveBooking(wctx, b); err != nil {
			return err
		}
		if _, err := tx.DeleteBookingPeriod(wctx, b.ID); err != nil {
			return err
		}
		cancelled = b
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !changed {
		return true, nil
	}

	uc.Cache.Invalidate(wctx, cancelled.BoatID)

	if full, err := uc.Repo.GetBooking(wctx, cancelled.ID); err == nil {
		cancelled = full
	} else {
		uc.Log.Warn("reload booking failed", zap.String("booking_id", cancelled.ID), zap.Error(err))
	}

	if uc.Notifier != nil {
		uc.notifyAdmins(wctx, "cancellation", cancelled, uc.Notifier.Cancellation)
	}

	uc.Audit.Dispatch(audit.Event{
		UserID:   actor.UserID(),
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: cancelled.ID,
	})

	return true, nil
}
