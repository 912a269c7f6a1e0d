package booking

import (
	"fmt"

	"field-booking/internal/domain/resource"
	"field-booking/internal/pkg/errs"
)

// UnitMismatchError carries what the caller needs to correct the window.
type UnitMismatchError struct {
	Unit     resource.Unit
	Duration int
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("duration %d minutes is not a multiple of %d minutes", e.Duration, e.Unit.Minutes())
}

// CountUnits returns how many whole units fit exactly in [start, end).
func CountUnits(start, end Minutes, unit resource.Unit) (int, error) {
	diff := int(end - start)
	if diff <= 0 {
		return 0, errs.Mark(errs.Newf("end %s must be after start %s", end, start), errs.ErrInvalidWindow)
	}
	if !unit.IsValid() {
		return 0, resource.ErrInvalidUnit
	}
	if diff%unit.Minutes() != 0 {
		return 0, errs.Mark(&UnitMismatchError{Unit: unit, Duration: diff}, errs.ErrUnitMismatch)
	}
	return diff / unit.Minutes(), nil
}

func (w TimeWindow) Units(unit resource.Unit) (int, error) {
	return CountUnits(w.start, w.end, unit)
}
