package memory

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type AvailabilityRepository struct {
	s *Store
}

func (s *Store) Availability() *AvailabilityRepository { return &AvailabilityRepository{s: s} }

func (r *AvailabilityRepository) GetBoat(ctx context.Context, boatID uint) (*models.Boat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.liveBoat(boatID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *AvailabilityRepository) ListPeriods(ctx context.Context, boatID uint) ([]models.BoatAvailability, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.BoatAvailability
	for _, a := range r.s.periods {
		if a.BoatID == boatID {
			out = append(out, a)
		}
	}
	sortPeriods(out)
	return out, nil
}

func (r *AvailabilityRepository) OverlappingUnavailable(
	ctx context.Context,
	boatID uint,
	start time.Time,
	end time.Time,
) ([]models.BoatAvailability, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.BoatAvailability
	for _, a := range r.s.periods {
		if a.BoatID != boatID || a.IsAvailable {
			continue
		}
		if period.Overlaps(a.StartDate, a.EndDate, start, end) {
			out = append(out, a)
		}
	}
	sortPeriods(out)
	return out, nil
}

func (r *AvailabilityRepository) CreatePeriod(ctx context.Context, p *models.BoatAvailability) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insertPeriod(p)
}

func (r *AvailabilityRepository) GetPeriod(ctx context.Context, id uint) (*models.BoatAvailability, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.periods[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *AvailabilityRepository) DeletePeriodByStart(ctx context.Context, boatID uint, start time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var match *models.BoatAvailability
	for _, a := range r.s.periods {
		if a.BoatID != boatID || !a.StartDate.Equal(start) || domainavailability.IsBookingHold(a) {
			continue
		}
		if match == nil || a.ID < match.ID {
			cp := a
			match = &cp
		}
	}
	if match == nil {
		return false, nil
	}
	delete(r.s.periods, match.ID)
	return true, nil
}

func (r *AvailabilityRepository) DeletePeriod(ctx context.Context, id uint) (*models.BoatAvailability, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.periods[id]
	if !ok || domainavailability.IsBookingHold(a) {
		return nil, domain.ErrNotFound
	}
	delete(r.s.periods, id)
	return &a, nil
}

func (r *AvailabilityRepository) ListActiveBookings(ctx context.Context, boatID uint) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.BoatID == boatID && b.Status != string(domainbooking.StatusCancelled) {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *AvailabilityRepository) OverlappingActiveBookings(
	ctx context.Context,
	boatID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.s.bookings {
		if b.BoatID != boatID || b.Status == string(domainbooking.StatusCancelled) {
			continue
		}
		if period.Overlaps(b.StartDate, b.EndDate, start, end) {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func sortPeriods(list []models.BoatAvailability) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartDate.Equal(list[j].StartDate) {
			return list[i].ID < list[j].ID
		}
		return list[i].StartDate.Before(list[j].StartDate)
	})
}

func sortBookings(list []models.Booking) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartDate.Equal(list[j].StartDate) {
			return list[i].ID < list[j].ID
		}
		return list[i].StartDate.Before(list[j].StartDate)
	})
}

var _ domainavailability.Repository = (*AvailabilityRepository)(nil)
