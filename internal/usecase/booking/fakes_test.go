package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	"github.com/BruksfildServices01/boat-rental/internal/infra/memory"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type sent struct {
	event      string
	recipients []string
	summary    domainbooking.Summary
	ctxErr     error
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sent
	fail bool
}

func (f *fakeNotifier) record(ctx context.Context, event string, to []string, s domainbooking.Summary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sent{event: event, recipients: to, summary: s, ctxErr: ctx.Err()})
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (f *fakeNotifier) ReservationCreated(ctx context.Context, to []string, s domainbooking.Summary) error {
	return f.record(ctx, "created", to, s)
}

func (f *fakeNotifier) ReservationApproved(ctx context.Context, to []string, s domainbooking.Summary) error {
	return f.record(ctx, "approved", to, s)
}

func (f *fakeNotifier) Cancellation(ctx context.Context, to []string, s domainbooking.Summary) error {
	return f.record(ctx, "cancelled", to, s)
}

func (f *fakeNotifier) events() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.sent...)
}

type countingCache struct {
	availability.NopCache
	mu          sync.Mutex
	invalidated []uint
}

func (c *countingCache) Invalidate(_ context.Context, boatID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, boatID)
}

// ------------------------------------------------------------------

type fixture struct {
	store    *memory.Store
	notifier *fakeNotifier
	cache    *countingCache
	deps     Deps

	renter models.User
	other  models.User
	owner  models.User
	admin  models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	f := &fixture{
		store:    store,
		notifier: &fakeNotifier{},
		cache:    &countingCache{},
	}

	f.owner = store.AddUser(models.User{Name: "Olga Owner", Email: "owner@example.com", Role: models.RoleOwner})
	f.admin = store.AddUser(models.User{Name: "Ada Admin", Email: "admin@example.com", Role: models.RoleAdmin})
	f.renter = store.AddUser(models.User{Name: "Rita Renter", Email: "rita@example.com", Role: models.RoleRenter})
	f.other = store.AddUser(models.User{Name: "Otto", Email: "otto@example.com", Role: models.RoleRenter})

	for _, id := range []uint{10, 20} {
		store.AddBoat(models.Boat{
			ID:              id,
			Name:            "Sea Breeze",
			OwnerID:         f.owner.ID,
			DailyPriceCents: 12000,
			IsActive:        true,
			IsVerified:      true,
		})
	}

	f.deps = Deps{
		Repo:     store.Bookings(),
		Cache:    f.cache,
		Notifier: f.notifier,
	}
	return f
}

func date(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func cents(v int64) *int64 { return &v }

func (f *fixture) input(boatID, renterID uint, start, end time.Time) CreateBookingInput {
	return CreateBookingInput{
		BoatID:          boatID,
		RenterID:        renterID,
		Start:           start,
		End:             end,
		DailyPriceCents: cents(10000),
		ServiceFeeCents: 5000,
		RenterName:      "Rita Renter",
		RenterEmail:     "rita@example.com",
	}
}

func as(u models.User) domain.Actor {
	return domain.Actor{ID: u.ID, Role: u.Role}
}
