package resource

import (
	"fmt"

	"field-booking/internal/pkg/errs"
)

// Unit is the billable granularity of a resource type, in minutes.
type Unit int

const (
	UnitHour        Unit = 60
	UnitHalfSession Unit = 90
	UnitFullSession Unit = 120
)

var ErrInvalidUnit = errs.New("unit must be one of 60, 90, 120 minutes")

func NewUnit(minutes int) (Unit, error) {
	u := Unit(minutes)
	if !u.IsValid() {
		return 0, errs.Wrapf(ErrInvalidUnit, "got %d", minutes)
	}
	return u, nil
}

func (u Unit) IsValid() bool {
	switch u {
	case UnitHour, UnitHalfSession, UnitFullSession:
		return true
	default:
		return false
	}
}

func (u Unit) Minutes() int {
	return int(u)
}

func (u Unit) String() string {
	return fmt.Sprintf("%dm", int(u))
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusMaintenance:
		return true
	default:
		return false
	}
}
