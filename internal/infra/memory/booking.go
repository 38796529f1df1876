package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type BookingRepository struct {
	s *Store
}

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

func (r *BookingRepository) WithinTx(
	ctx context.Context,
	fn func(tx domainbooking.Tx) error,
) error {
	return r.s.within(func() error {
		return fn(&tx{s: r.s})
	})
}

func (r *BookingRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b = r.s.withRelations(b)
	return &b, nil
}

func (r *BookingRepository) ListBookings(
	ctx context.Context,
	f domainbooking.Filters,
) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range r.s.bookings {
		if f.RenterID != nil && b.RenterID != *f.RenterID {
			continue
		}
		if f.OwnerID != nil && r.s.boats[b.BoatID].OwnerID != *f.OwnerID {
			continue
		}
		if f.Status != nil && b.Status != string(*f.Status) {
			continue
		}
		rng := period.Range{Start: b.StartDate, End: b.EndDate}
		if !rng.Within(f.StartDate, f.EndDate) {
			continue
		}
		out = append(out, r.s.withRelations(b))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

func (r *BookingRepository) ListAdminEmails(ctx context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var emails []string
	for _, u := range r.s.users {
		if u.Role == models.RoleAdmin && u.Email != "" {
			emails = append(emails, u.Email)
		}
	}
	sort.Strings(emails)
	return emails, nil
}

// tx runs with the store's write lock held.
type tx struct {
	s *Store
}

func (t *tx) LockBoat(ctx context.Context, boatID uint) (*models.Boat, error) {
	b, ok := t.s.liveBoat(boatID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Owner = t.s.users[b.OwnerID]
	return &b, nil
}

func (t *tx) HasBlockedOverlap(ctx context.Context, boatID uint, start, end time.Time) (bool, error) {
	for _, a := range t.s.periods {
		if a.BoatID != boatID || a.IsAvailable || domainavailability.IsBookingHold(a) {
			continue
		}
		if period.Overlaps(a.StartDate, a.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (t *tx) HasBoatBookingOverlap(ctx context.Context, boatID uint, start, end time.Time) (bool, error) {
	for _, b := range t.s.bookings {
		if b.BoatID != boatID || b.Status == string(domainbooking.StatusCancelled) {
			continue
		}
		if period.Overlaps(b.StartDate, b.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (t *tx) HasRenterBookingOverlap(ctx context.Context, renterID uint, start, end time.Time) (bool, error) {
	for _, b := range t.s.bookings {
		if b.RenterID != renterID || b.Status == string(domainbooking.StatusCancelled) {
			continue
		}
		if period.Overlaps(b.StartDate, b.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (t *tx) CreateBooking(ctx context.Context, b *models.Booking) error {
	if _, exists := t.s.bookings[b.ID]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "bookings_pkey"}
	}
	// same backstop as the bookings_*_no_overlap exclusion constraints
	if b.Status != string(domainbooking.StatusCancelled) {
		if clash, _ := t.HasBoatBookingOverlap(ctx, b.BoatID, b.StartDate, b.EndDate); clash {
			return &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_boat_no_overlap"}
		}
		if clash, _ := t.HasRenterBookingOverlap(ctx, b.RenterID, b.StartDate, b.EndDate); clash {
			return &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_renter_no_overlap"}
		}
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = t.s.now()
	}
	stored := *b
	stored.Boat = models.Boat{}
	stored.Renter = models.User{}
	t.s.bookings[b.ID] = stored
	return nil
}

func (t *tx) CreatePeriod(ctx context.Context, p *models.BoatAvailability) error {
	return t.s.insertPeriod(p)
}

func (t *tx) GetBookingForUpdate(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := t.s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (t *tx) SaveBooking(ctx context.Context, b *models.Booking) error {
	if _, ok := t.s.bookings[b.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *b
	stored.Boat = models.Boat{}
	stored.Renter = models.User{}
	t.s.bookings[b.ID] = stored
	return nil
}

func (t *tx) DeleteBookingPeriod(ctx context.Context, bookingID string) (bool, error) {
	for id, a := range t.s.periods {
		if a.ReferenceType != nil && *a.ReferenceType == string(domainavailability.RefBooking) &&
			a.ReferenceID != nil && *a.ReferenceID == bookingID {
			delete(t.s.periods, id)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) insertPeriod(p *models.BoatAvailability) error {
	if !p.EndDate.After(p.StartDate) {
		return period.ErrInvalidRange
	}
	s.nextPeriodID++
	p.ID = s.nextPeriodID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.periods[p.ID] = *p
	return nil
}

var _ domainbooking.Repository = (*BookingRepository)(nil)
var _ domainbooking.Tx = (*tx)(nil)
