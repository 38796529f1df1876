package booking

import (
	"context"
	"time"
)

// Summary is what notification templates receive.
type Summary struct {
	BookingID  string    `json:"bookingId"`
	BoatID     uint      `json:"boatId"`
	BoatName   string    `json:"boatName"`
	RenterID   uint      `json:"renterId"`
	RenterName string    `json:"renterName"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice float64   `json:"totalPrice"`
	At         time.Time `json:"at"`
}

// Notifier dispatches booking lifecycle messages. Failures are reported to
// the caller, which logs them and carries on.
type Notifier interface {
	ReservationCreated(ctx context.Context, recipients []string, s Summary) error
	ReservationApproved(ctx context.Context, recipients []string, s Summary) error
	Cancellation(ctx context.Context, recipients []string, s Summary) error
}
