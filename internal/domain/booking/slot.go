package booking

import (
	"fmt"
	"strings"
	"time"

	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotSource string

const (
	SourceBooking SlotSource = "booking"
	SourceHold    SlotSource = "hold"
)

// BusySlot is one occupied window on a resource, either a confirmed booking
// or an active hold.
type BusySlot struct {
	ResourceID uuid.UUID
	Window     TimeWindow
	Source     SlotSource
	RefID      uuid.UUID
	ExpiresAt  *time.Time
}

const (
	ReasonOccupied            = "occupied"
	ReasonResourceUnavailable = "resource_unavailable"
	ReasonHoldRejected        = "hold_rejected"
	ReasonContention          = "contention"
)

// ConflictError explains why a window could not be taken.
type ConflictError struct {
	ResourceID uuid.UUID
	Window     TimeWindow
	Reason     string
	Conflicts  []BusySlot
	Cause      error
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("resource %s not available for %s: %s: %v", e.ResourceID, e.Window, e.Reason, e.Cause)
		}
		return fmt.Sprintf("resource %s not available for %s: %s", e.ResourceID, e.Window, e.Reason)
	}
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, string(c.Source)+" "+c.Window.String())
	}
	return fmt.Sprintf("resource %s not available for %s: conflicts with %s", e.ResourceID, e.Window, strings.Join(parts, ", "))
}

func NewConflict(resourceID uuid.UUID, window TimeWindow, reason string, conflicts []BusySlot) error {
	return errs.Mark(&ConflictError{
		ResourceID: resourceID,
		Window:     window,
		Reason:     reason,
		Conflicts:  conflicts,
	}, errs.ErrSlotUnavailable)
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// WrapConflict keeps cause in the chain while presenting it as SlotUnavailable.
func WrapConflict(cause error, resourceID uuid.UUID, window TimeWindow, reason string) error {
	return errs.Mark(&ConflictError{
		ResourceID: resourceID,
		Window:     window,
		Reason:     reason,
		Cause:      cause,
	}, errs.ErrSlotUnavailable)
}
