package httperr

import "errors"

const (
	CodeInvalidDateRange  = "invalid_date_range"
	CodeInvalidRequest    = "invalid_request"
	CodeInvalidStatus     = "invalid_status"
	CodeInvalidState      = "invalid_state"
	CodeInvalidPrice      = "invalid_price"
	CodeInvalidRating     = "invalid_rating"
	CodeBoatNotFound      = "boat_not_found"
	CodeBookingNotFound   = "booking_not_found"
	CodePeriodNotFound    = "period_not_found"
	CodeReviewNotFound    = "review_not_found"
	CodeUserNotFound      = "user_not_found"
	CodeBoatNotRentable   = "boat_not_rentable"
	CodeBoatBlocked       = "boat_blocked"
	CodeBoatAlreadyBooked = "boat_already_booked"
	CodeRenterOverlap     = "renter_overlap"
	CodeBookingConflict   = "booking_conflict"
	CodeForbidden         = "forbidden"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code carried by err, if any.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

var notFoundCodes = map[string]struct{}{
	CodeBoatNotFound:    {},
	CodeBookingNotFound: {},
	CodePeriodNotFound:  {},
	CodeReviewNotFound:  {},
	CodeUserNotFound:    {},
}

var conflictCodes = map[string]struct{}{
	CodeBoatBlocked:       {},
	CodeBoatAlreadyBooked: {},
	CodeRenterOverlap:     {},
	CodeBookingConflict:   {},
	CodeBoatNotRentable:   {},
	CodeInvalidState:      {},
}

func IsNotFound(err error) bool {
	code, ok := BusinessCode(err)
	if !ok {
		return false
	}
	_, found := notFoundCodes[code]
	return found
}

func IsForbidden(err error) bool {
	return IsBusiness(err, CodeForbidden)
}

func IsConflict(err error) bool {
	code, ok := BusinessCode(err)
	if !ok {
		return false
	}
	_, found := conflictCodes[code]
	return found
}

var messages = map[string]string{
	CodeInvalidDateRange:  "Invalid date range.",
	CodeInvalidRequest:    "Invalid request.",
	CodeInvalidStatus:     "Unknown booking status.",
	CodeInvalidState:      "Booking can no longer change status.",
	CodeInvalidPrice:      "Prices must not be negative.",
	CodeInvalidRating:     "Rating must be between 1 and 5.",
	CodeBoatNotFound:      "Boat not found.",
	CodeBookingNotFound:   "Booking not found.",
	CodePeriodNotFound:    "Period not found.",
	CodeReviewNotFound:    "Review not found.",
	CodeUserNotFound:      "User not found.",
	CodeBoatNotRentable:   "Boat is not open for bookings.",
	CodeBoatBlocked:       "The boat is not available for the selected period.",
	CodeBoatAlreadyBooked: "The boat is already booked for the selected period.",
	CodeRenterOverlap:     "You already have a booking overlapping the selected period.",
	CodeBookingConflict:   "The selected period was just taken, please pick other dates.",
	CodeForbidden:         "You are not allowed to perform this action.",
}

// Message returns the client-facing text for a business code.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
