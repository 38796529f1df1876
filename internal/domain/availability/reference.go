package availability

import (
	"fmt"
	"time"
)

// RefType tags where a stored period comes from.
type RefType string

const (
	RefBlocked   RefType = "blocked"
	RefBooking   RefType = "booking"
	RefAvailable RefType = "available"
)

func ParseRefType(s string) (RefType, error) {
	switch RefType(s) {
	case RefBlocked, RefBooking, RefAvailable:
		return RefType(s), nil
	}
	return "", fmt.Errorf("availability: unknown reference type %q", s)
}

// FromFlag is the type an untyped row falls back to.
func FromFlag(isAvailable bool) RefType {
	if isAvailable {
		return RefAvailable
	}
	return RefBlocked
}

// Reference is the optional back-link from a period to the booking that
// holds it. The zero value means "no booking".
type Reference struct {
	bookingID string
}

func NoReference() Reference {
	return Reference{}
}

func BookingRef(id string) Reference {
	return Reference{bookingID: id}
}

func (r Reference) BookingID() (string, bool) {
	return r.bookingID, r.bookingID != ""
}

// Ptr is the nullable column form.
func (r Reference) Ptr() *string {
	if r.bookingID == "" {
		return nil
	}
	id := r.bookingID
	return &id
}

func ReferenceFromPtr(id *string) Reference {
	if id == nil {
		return NoReference()
	}
	return BookingRef(*id)
}

// Period is one entry of a boat's unavailable calendar.
type Period struct {
	ID        uint
	Type      RefType
	Reference Reference
	Start     time.Time
	End       time.Time
	Reason    string
	Details   string
}
