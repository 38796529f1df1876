package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

// maxIDAttempts bounds retries after a booking id collision.
const maxIDAttempts = 3

const bookingHoldReason = "Customer reservation"

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BoatID   uint
	RenterID uint

	Start time.Time
	End   time.Time

	// DailyPriceCents falls back to the boat's price when nil.
	DailyPriceCents *int64
	ServiceFeeCents int64

	RenterName  string
	RenterEmail string
	RenterPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	Deps
	newID func(time.Time) string
}

func NewCreateBooking(deps Deps) *CreateBooking {
	return &CreateBooking{
		Deps:  deps.withDefaults(),
		newID: domainbooking.NewID,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 0. Input
	// --------------------------------------------------
	rng, err := period.New(in.Start, in.End)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateRange)
	}
	if in.ServiceFeeCents < 0 || (in.DailyPriceCents != nil && *in.DailyPriceCents < 0) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidPrice)
	}

	// A paid reservation must be persisted even when the client goes away.
	wctx, cancel := uc.detached(ctx)
	defer cancel()

	var created *models.Booking
	for attempt := 1; ; attempt++ {
		created, err = uc.persist(wctx, in, rng)
		if err == nil {
			break
		}
		if httperr.IsUniqueViolation(err) && attempt < maxIDAttempts {
			uc.Log.Info("booking id collision, retrying", zap.Int("attempt", attempt))
			continue
		}
		return nil, translatePersistErr(err)
	}

	uc.Cache.Invalidate(wctx, in.BoatID)

	// --------------------------------------------------
	// 9. Notify renter and owner
	// --------------------------------------------------
	if full, err := uc.Repo.GetBooking(wctx, created.ID); err == nil {
		created = full
	} else {
		uc.Log.Warn("reload booking failed", zap.String("booking_id", created.ID), zap.Error(err))
	}

	if uc.Notifier != nil {
		uc.send(wctx, "reservation_created", created,
			recipients(renterEmail(created), created.Boat.Owner.Email),
			uc.Notifier.ReservationCreated,
		)
	}

	renterID := in.RenterID
	uc.Audit.Dispatch(audit.Event{
		UserID:   &renterID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: created.ID,
		Metadata: map[string]any{
			"boat_id": created.BoatID,
			"start":   created.StartDate,
			"end":     created.EndDate,
			"total":   domainbooking.FromCents(created.TotalPriceCents),
		},
	})

	return created, nil
}

// persist runs steps 1-8 in one transaction holding the boat row lock.
func (uc *CreateBooking) persist(
	ctx context.Context,
	in CreateBookingInput,
	rng period.Range,
) (*models.Booking, error) {

	var out *models.Booking
	err := uc.Repo.WithinTx(ctx, func(tx domainbooking.Tx) error {

		// --------------------------------------------------
		// 1. Boat
		// --------------------------------------------------
		boat, err := tx.LockBoat(ctx, in.BoatID)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness(httperr.CodeBoatNotFound)
		}
		if err != nil {
			return err
		}
		if !boat.Rentable() {
			return httperr.ErrBusiness(httperr.CodeBoatNotRentable)
		}

		// --------------------------------------------------
		// 2-4. Conflicts
		// --------------------------------------------------
		blocked, err := tx.HasBlockedOverlap(ctx, in.BoatID, rng.Start, rng.End)
		if err != nil {
			return err
		}
		if blocked {
			return httperr.ErrBusiness(httperr.CodeBoatBlocked)
		}

		booked, err := tx.HasBoatBookingOverlap(ctx, in.BoatID, rng.Start, rng.End)
		if err != nil {
			return err
		}
		if booked {
			return httperr.ErrBusiness(httperr.CodeBoatAlreadyBooked)
		}

		busy, err := tx.HasRenterBookingOverlap(ctx, in.RenterID, rng.Start, rng.End)
		if err != nil {
			return err
		}
		if busy {
			return httperr.ErrBusiness(httperr.CodeRenterOverlap)
		}

		// --------------------------------------------------
		// 5. Price
		// --------------------------------------------------
		daily := boat.DailyPriceCents
		if in.DailyPriceCents != nil {
			daily = *in.DailyPriceCents
		}
		price := domainbooking.Quote(rng, daily, in.ServiceFeeCents)

		// --------------------------------------------------
		// 6-7. Booking
		// --------------------------------------------------
		now := uc.Now()
		b := &models.Booking{
			ID:              uc.newID(now),
			BoatID:          in.BoatID,
			RenterID:        in.RenterID,
			StartDate:       rng.Start,
			EndDate:         rng.End,
			DailyPriceCents: price.DailyCents,
			SubtotalCents:   price.SubtotalCents,
			ServiceFeeCents: price.ServiceFeeCents,
			TotalPriceCents: price.TotalCents,
			Status:          string(domainbooking.InitialStatus()),
			RenterName:      in.RenterName,
			RenterEmail:     in.RenterEmail,
			RenterPhone:     in.RenterPhone,
			PaymentIntentID: domainbooking.NewPaymentIntentID(),
			PaymentStatus:   domainbooking.PaymentSucceeded,
			PaidAt:          &now,
			CreatedAt:       now,
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		// --------------------------------------------------
		// 8. Linked period
		// --------------------------------------------------
		refType := string(domainavailability.RefBooking)
		hold := &models.BoatAvailability{
			BoatID:        in.BoatID,
			StartDate:     rng.Start,
			EndDate:       rng.End,
			IsAvailable:   false,
			Reason:        bookingHoldReason,
			ReferenceType: &refType,
			ReferenceID:   domainavailability.BookingRef(b.ID).Ptr(),
		}
		if err := tx.CreatePeriod(ctx, hold); err != nil {
			return err
		}

		b.Boat = *boat
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// translatePersistErr turns storage-level race outcomes into a conflict.
func translatePersistErr(err error) error {
	if httperr.IsExclusionConflict(err) || httperr.IsSerializationFailure(err) {
		return httperr.ErrBusiness(httperr.CodeBookingConflict)
	}
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeBookingConflict)
	}
	return err
}

func renterEmail(b *models.Booking) string {
	if b.RenterEmail != "" {
		return b.RenterEmail
	}
	return b.Renter.Email
}

func recipients(emails ...string) []string {
	out := make([]string, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
