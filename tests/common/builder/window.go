//go:build unit || e2e

package builder

import (
	"fmt"

	"field-booking/internal/domain/booking"
)

// Monday, so weekday tiers apply unless a test moves the date.
const (
	DefaultDate  = "2025-03-10"
	DefaultStart = "18:00"
	DefaultEnd   = "19:00"
)

func MustWindow(date, start, end string) booking.TimeWindow {
	w, err := booking.ParseWindow(date, start, end)
	if err != nil {
		panic(fmt.Sprintf("builder: bad window %s %s-%s: %v", date, start, end, err))
	}
	return w
}
