package availability

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domainboat "github.com/BruksfildServices01/boat-rental/internal/domain/boat"
	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SetPeriodInput struct {
	BoatID      uint
	Start       time.Time
	End         time.Time
	IsAvailable bool
	Reason      string
	Details     string
	Actor       domain.Actor
}

// ======================================================
// USE CASE
// ======================================================

// Calendar holds the owner-facing writes on a boat's periods.
type Calendar struct {
	repo  domainavailability.Repository
	cache domainavailability.Cache
	audit *audit.Dispatcher
}

func NewCalendar(
	repo domainavailability.Repository,
	cache domainavailability.Cache,
	audit *audit.Dispatcher,
) *Calendar {
	if cache == nil {
		cache = domainavailability.NopCache{}
	}
	return &Calendar{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// AddBlock stores an unavailable period typed blocked. Existing bookings in
// the range are left alone.
func (uc *Calendar) AddBlock(
	ctx context.Context,
	in SetPeriodInput,
) (*models.BoatAvailability, error) {
	in.IsAvailable = false
	return uc.SetPeriod(ctx, in)
}

// SetPeriod stores a period typed from its availability flag.
func (uc *Calendar) SetPeriod(
	ctx context.Context,
	in SetPeriodInput,
) (*models.BoatAvailability, error) {

	if _, err := period.New(in.Start, in.End); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateRange)
	}

	if err := uc.authorize(ctx, in.BoatID, in.Actor); err != nil {
		return nil, err
	}

	refType := string(domainavailability.FromFlag(in.IsAvailable))
	p := &models.BoatAvailability{
		BoatID:        in.BoatID,
		StartDate:     in.Start,
		EndDate:       in.End,
		IsAvailable:   in.IsAvailable,
		Reason:        in.Reason,
		Details:       in.Details,
		ReferenceType: &refType,
	}
	if err := uc.repo.CreatePeriod(ctx, p); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, in.BoatID)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Actor.UserID(),
		Action:   "period_" + refType,
		Entity:   "boat_availability",
		EntityID: itoa(p.ID),
		Metadata: map[string]any{"boat_id": in.BoatID, "start": in.Start, "end": in.End},
	})

	return p, nil
}

// RemoveBlock deletes the period of boatID starting exactly at start. A
// booking hold is not removable here.
func (uc *Calendar) RemoveBlock(
	ctx context.Context,
	boatID uint,
	start time.Time,
	actor domain.Actor,
) (bool, error) {

	if err := uc.authorize(ctx, boatID, actor); err != nil {
		return false, err
	}

	removed, err := uc.repo.DeletePeriodByStart(ctx, boatID, start)
	if err != nil || !removed {
		return false, err
	}
	uc.cache.Invalidate(ctx, boatID)

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.UserID(),
		Action:   "period_removed",
		Entity:   "boat_availability",
		Metadata: map[string]any{"boat_id": boatID, "start": start},
	})
	return true, nil
}

// UnblockByID deletes a period by id. Booking holds read as missing.
func (uc *Calendar) UnblockByID(
	ctx context.Context,
	periodID uint,
	actor domain.Actor,
) (bool, error) {

	p, err := uc.repo.GetPeriod(ctx, periodID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if domainavailability.IsBookingHold(*p) {
		return false, nil
	}
	if err := uc.authorize(ctx, p.BoatID, actor); err != nil {
		return false, err
	}

	removed, err := uc.repo.DeletePeriod(ctx, periodID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	uc.cache.Invalidate(ctx, removed.BoatID)

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.UserID(),
		Action:   "period_removed",
		Entity:   "boat_availability",
		EntityID: itoa(periodID),
	})
	return true, nil
}

// authorize loads the boat and checks the actor may edit its calendar.
func (uc *Calendar) authorize(ctx context.Context, boatID uint, actor domain.Actor) error {
	b, err := uc.repo.GetBoat(ctx, boatID)
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeBoatNotFound)
	}
	if err != nil {
		return err
	}
	if !domainboat.CanManage(b, actor.ID, actor.Role) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}
