package period

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("period: start must be before end")

const day = 24 * time.Hour

// Overlaps reports whether [startA, endA) and [startB, endB) intersect.
// Callers must reject ranges where start >= end before calling it.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidRange
	}
	if !r.End.After(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

func (r Range) Overlaps(other Range) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Days is the elapsed time in days, fractional part kept.
func (r Range) Days() float64 {
	return float64(r.Duration()) / float64(day)
}

// Within reports whether the range touches the inclusive window [from, to].
// A nil bound is open.
func (r Range) Within(from, to *time.Time) bool {
	if from != nil && r.End.Before(*from) {
		return false
	}
	if to != nil && r.Start.After(*to) {
		return false
	}
	return true
}
