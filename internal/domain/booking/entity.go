package booking

import (
	"time"

	"github.com/BruksfildServices01/boat-rental/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel marks b cancelled. It reports false when b already was.
func Cancel(b *models.Booking, now time.Time) (bool, error) {
	current := Status(b.Status)
	if current == StatusCancelled {
		return false, nil
	}
	if err := CanCancel(current); err != nil {
		return false, err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	b.UpdatedAt = &now
	return true, nil
}

// SetStatus applies a non-cancel status change.
func SetStatus(b *models.Booking, next Status, now time.Time) error {
	if err := CanTransition(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(next)
	b.UpdatedAt = &now
	return nil
}
