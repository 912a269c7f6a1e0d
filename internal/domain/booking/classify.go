package booking

import (
	"time"

	"field-booking/internal/pkg/errs"
)

type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
)

func (d DayType) String() string { return string(d) }

func (d DayType) IsValid() bool {
	switch d {
	case Weekday, Weekend:
		return true
	default:
		return false
	}
}

func ParseDayType(s string) (DayType, error) {
	d := DayType(s)
	if !d.IsValid() {
		return "", errs.Newf("unknown day type %q", s)
	}
	return d, nil
}

type TimeBand string

const (
	Morning   TimeBand = "morning"
	Afternoon TimeBand = "afternoon"
	Evening   TimeBand = "evening"
)

func (b TimeBand) String() string { return string(b) }

func (b TimeBand) IsValid() bool {
	switch b {
	case Morning, Afternoon, Evening:
		return true
	default:
		return false
	}
}

func ParseTimeBand(s string) (TimeBand, error) {
	b := TimeBand(s)
	if !b.IsValid() {
		return "", errs.Newf("unknown time band %q", s)
	}
	return b, nil
}

func DayTypes() []DayType   { return []DayType{Weekday, Weekend} }
func TimeBands() []TimeBand { return []TimeBand{Morning, Afternoon, Evening} }

// Tier selects a rate card row together with a resource type.
type Tier struct {
	Day  DayType
	Band TimeBand
}

func ClassifyDay(d Date) DayType {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// ClassifyBand uses closed-open bands: 12:00 is afternoon, 18:00 is evening.
func ClassifyBand(start Minutes) TimeBand {
	switch h := start.Hour(); {
	case h < 12:
		return Morning
	case h < 18:
		return Afternoon
	default:
		return Evening
	}
}

func Classify(d Date, start Minutes) Tier {
	return Tier{Day: ClassifyDay(d), Band: ClassifyBand(start)}
}
