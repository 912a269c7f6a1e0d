package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"field-booking/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Date is a civil calendar date with no time-of-day and no zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errs.Mark(errs.Wrapf(err, "invalid date %q", s), errs.ErrInvalidWindow)
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time        { return d.t }
func (d Date) Weekday() time.Weekday  { return d.t.Weekday() }
func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) String() string         { return d.t.Format(dateLayout) }
func (d Date) AddDays(n int) Date     { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// Minutes is a time of day expressed as minutes since midnight.
type Minutes int

const MinutesPerDay Minutes = 24 * 60

// ParseClock parses "HH:MM". "24:00" is accepted so a window can end at midnight.
func ParseClock(s string) (Minutes, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !twoDigits(hh) || !twoDigits(mm) {
		return 0, errs.Mark(errs.Newf("invalid time %q, want HH:MM", s), errs.ErrInvalidWindow)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "invalid hour in %q", s), errs.ErrInvalidWindow)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "invalid minute in %q", s), errs.ErrInvalidWindow)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, errs.Mark(errs.Newf("time %q out of range", s), errs.ErrInvalidWindow)
	}
	return Minutes(h*60 + m), nil
}

// twoDigits rejects the signs strconv.Atoi would otherwise accept.
func twoDigits(s string) bool {
	return len(s) == 2 && s[0] >= '0' && s[0] <= '9' && s[1] >= '0' && s[1] <= '9'
}

func (m Minutes) Hour() int {
	return int(m) / 60
}

func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// TimeWindow is a half-open interval [start, end) on one date.
type TimeWindow struct {
	date  Date
	start Minutes
	end   Minutes
}

func NewTimeWindow(date Date, start, end Minutes) (TimeWindow, error) {
	if date.IsZero() {
		return TimeWindow{}, errs.Mark(errs.New("date is required"), errs.ErrInvalidWindow)
	}
	if start < 0 || end > MinutesPerDay {
		return TimeWindow{}, errs.Mark(errs.Newf("window %s-%s is outside the day", start, end), errs.ErrInvalidWindow)
	}
	if end <= start {
		return TimeWindow{}, errs.Mark(errs.Newf("end %s must be after start %s", end, start), errs.ErrInvalidWindow)
	}
	return TimeWindow{date: date, start: start, end: end}, nil
}

func ParseWindow(date, start, end string) (TimeWindow, error) {
	d, err := ParseDate(date)
	if err != nil {
		return TimeWindow{}, err
	}
	s, err := ParseClock(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return TimeWindow{}, err
	}
	return NewTimeWindow(d, s, e)
}

func (w TimeWindow) Date() Date     { return w.date }
func (w TimeWindow) Start() Minutes { return w.start }
func (w TimeWindow) End() Minutes   { return w.end }

func (w TimeWindow) Length() int {
	return int(w.end - w.start)
}

// Overlaps uses half-open semantics: a window ending at 20:00 does not
// overlap one starting at 20:00.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.date.Equal(other.date) && w.start < other.end && other.start < w.end
}

func (w TimeWindow) Equal(other TimeWindow) bool {
	return w.date.Equal(other.date) && w.start == other.start && w.end == other.end
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s %s-%s", w.date, w.start, w.end)
}
