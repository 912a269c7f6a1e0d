// Package availability decides whether a window on a resource is free given
// the occupancy facts read from storage.
package availability

import (
	"sort"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"

	"github.com/google/uuid"
)

// Occupancy is the state of one or more resources as of a single read.
type Occupancy struct {
	Bookings []booking.BusySlot
	Holds    []*hold.Hold
}

type Result struct {
	ResourceID uuid.UUID
	Available  bool
	Conflicts  []booking.BusySlot
}

type Options struct {
	// ExcludeHold ignores the hold being consumed by the caller.
	ExcludeHold uuid.UUID
}

// Evaluate checks window against the occupancy of resourceID. Holds count
// only while IsOccupying(now) is true.
func Evaluate(resourceID uuid.UUID, window booking.TimeWindow, occ Occupancy, now time.Time, opts Options) Result {
	var conflicts []booking.BusySlot
	for _, slot := range occ.Bookings {
		if slot.ResourceID == resourceID && slot.Window.Overlaps(window) {
			conflicts = append(conflicts, slot)
		}
	}
	for _, h := range occ.Holds {
		if h.ResourceID() != resourceID || !h.IsOccupying(now) {
			continue
		}
		if opts.ExcludeHold != uuid.Nil && h.ID() == opts.ExcludeHold {
			continue
		}
		if h.Window().Overlaps(window) {
			conflicts = append(conflicts, h.BusySlot())
		}
	}
	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].Window.Start() < conflicts[j].Window.Start()
	})
	return Result{
		ResourceID: resourceID,
		Available:  len(conflicts) == 0,
		Conflicts:  conflicts,
	}
}

// EvaluateAll applies Evaluate to every candidate against the same occupancy
// so all answers reflect one point in time. Order of candidates is kept.
func EvaluateAll(candidates []uuid.UUID, window booking.TimeWindow, occ Occupancy, now time.Time) []Result {
	results := make([]Result, 0, len(candidates))
	for _, id := range candidates {
		results = append(results, Evaluate(id, window, occ, now, Options{}))
	}
	return results
}
