package availability

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
)

const (
	MsgInvalidRange = "Invalid date range"
	MsgBlocked      = "Boat is blocked for this period"
	MsgBooked       = "Boat is booked during this period"
	MsgAvailable    = "Available"
)

type CheckInput struct {
	BoatID           uint
	Start            time.Time
	End              time.Time
	ExcludeBookingID string
}

type CheckResult struct {
	IsAvailable bool   `json:"isAvailable"`
	Message     string `json:"message"`
}

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute answers whether [Start, End) is free for the boat. An invalid range
// is an answer, not an error.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckInput,
) (CheckResult, error) {

	if _, err := period.New(in.Start, in.End); err != nil {
		return CheckResult{IsAvailable: false, Message: MsgInvalidRange}, nil
	}

	// --------------------------------------------------
	// Owner blocks
	// --------------------------------------------------
	blocks, err := uc.repo.OverlappingUnavailable(ctx, in.BoatID, in.Start, in.End)
	if err != nil {
		return CheckResult{}, err
	}
	for _, b := range blocks {
		// booking holds are judged through the booking below
		if domain.IsBookingHold(b) {
			continue
		}
		return CheckResult{IsAvailable: false, Message: MsgBlocked}, nil
	}

	// --------------------------------------------------
	// Bookings
	// --------------------------------------------------
	bookings, err := uc.repo.OverlappingActiveBookings(ctx, in.BoatID, in.Start, in.End)
	if err != nil {
		return CheckResult{}, err
	}
	for _, b := range bookings {
		if in.ExcludeBookingID != "" && b.ID == in.ExcludeBookingID {
			continue
		}
		return CheckResult{IsAvailable: false, Message: MsgBooked}, nil
	}

	return CheckResult{IsAvailable: true, Message: MsgAvailable}, nil
}
