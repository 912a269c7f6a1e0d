package errs

import "errors"

// Booking taxonomy shared by every layer. Lower layers mark their causes with
// these so handlers can branch with errors.Is.
var (
	ErrNotFound = errors.New("not found")

	// Request shape
	ErrInvalidWindow = errors.New("invalid time window")
	ErrUnitMismatch  = errors.New("duration does not match unit")

	// Occupancy
	ErrSlotUnavailable = errors.New("slot unavailable")

	// Pricing
	ErrRateNotFound = errors.New("rate not found")

	// Holds
	ErrHoldExpired   = errors.New("hold expired")
	ErrHoldNotActive = errors.New("hold not active")

	ErrInvalidCursor = errors.New("invalid cursor")

	ErrForbidden = errors.New("forbidden")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
