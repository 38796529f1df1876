package availability

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

// FromModel converts a stored row, falling back to the availability flag
// when the row carries no reference type.
func FromModel(a models.BoatAvailability) Period {
	typ := FromFlag(a.IsAvailable)
	if a.ReferenceType != nil {
		if t, err := ParseRefType(*a.ReferenceType); err == nil {
			typ = t
		}
	}
	return Period{
		ID:        a.ID,
		Type:      typ,
		Reference: ReferenceFromPtr(a.ReferenceID),
		Start:     a.StartDate,
		End:       a.EndDate,
		Reason:    a.Reason,
		Details:   a.Details,
	}
}

// Merge builds the calendar: stored periods plus one implied period per
// non-cancelled booking that has no stored period of its own. Sorted by start.
func Merge(stored []models.BoatAvailability, bookings []models.Booking) []Period {
	out := make([]Period, 0, len(stored)+len(bookings))
	linked := make(map[string]struct{}, len(stored))

	for _, a := range stored {
		p := FromModel(a)
		if id, ok := p.Reference.BookingID(); ok && p.Type == RefBooking {
			linked[id] = struct{}{}
		}
		out = append(out, p)
	}

	for _, b := range bookings {
		if _, ok := linked[b.ID]; ok {
			continue
		}
		out = append(out, Period{
			Type:      RefBooking,
			Reference: BookingRef(b.ID),
			Start:     b.StartDate,
			End:       b.EndDate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// Window keeps periods touching the inclusive window [from, to].
func Window(periods []Period, from, to *time.Time) []Period {
	if from == nil && to == nil {
		return periods
	}
	out := make([]Period, 0, len(periods))
	for _, p := range periods {
		r := period.Range{Start: p.Start, End: p.End}
		if r.Within(from, to) {
			out = append(out, p)
		}
	}
	return out
}

// IsBookingHold reports whether a stored row mirrors a booking. Those rows
// are judged through the booking itself, not as owner blocks.
func IsBookingHold(a models.BoatAvailability) bool {
	p := FromModel(a)
	_, ok := p.Reference.BookingID()
	return ok && p.Type == RefBooking
}
