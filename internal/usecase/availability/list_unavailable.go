package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
)

type ListUnavailableInput struct {
	BoatID uint
	From   *time.Time
	To     *time.Time
}

type ListUnavailable struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewListUnavailable(repo domain.Repository, cache domain.Cache) *ListUnavailable {
	if cache == nil {
		cache = domain.NopCache{}
	}
	return &ListUnavailable{repo: repo, cache: cache}
}

// Execute returns stored periods merged with the periods implied by live
// bookings, ordered by start. The unfiltered calendar is cached per boat;
// a write landing between the reads and the Set keeps it out of the cache.
func (uc *ListUnavailable) Execute(
	ctx context.Context,
	in ListUnavailableInput,
) ([]domain.Period, error) {

	calendar, version, ok := uc.cache.Get(ctx, in.BoatID)
	if !ok {
		stored, err := uc.repo.ListPeriods(ctx, in.BoatID)
		if err != nil {
			return nil, err
		}
		bookings, err := uc.repo.ListActiveBookings(ctx, in.BoatID)
		if err != nil {
			return nil, err
		}
		calendar = domain.Merge(stored, bookings)
		uc.cache.Set(ctx, in.BoatID, version, calendar)
	}

	return domain.Window(calendar, in.From, in.To), nil
}
