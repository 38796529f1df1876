package booking

import (
	"strings"

	"github.com/BruksfildServices01/boat-rental/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

const PaymentSucceeded = "succeeded"

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

// CanTransition rejects any change out of a terminal status.
func CanTransition(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanCancel allows pending and confirmed bookings. A cancelled booking is
// reported separately so callers can treat it as a no-op.
func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
