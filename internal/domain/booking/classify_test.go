//go:build unit

package booking_test

import (
	"testing"
	"time"

	"field-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		date  booking.Date
		start booking.Minutes
		want  booking.Tier
	}{
		{name: "monday morning", date: booking.NewDate(2025, time.March, 3), start: 8 * 60, want: booking.Tier{Day: booking.Weekday, Band: booking.Morning}},
		{name: "11:59 is still morning", date: booking.NewDate(2025, time.March, 3), start: 11*60 + 59, want: booking.Tier{Day: booking.Weekday, Band: booking.Morning}},
		{name: "12:00 is afternoon", date: booking.NewDate(2025, time.March, 4), start: 12 * 60, want: booking.Tier{Day: booking.Weekday, Band: booking.Afternoon}},
		{name: "17:59 is afternoon", date: booking.NewDate(2025, time.March, 7), start: 17*60 + 59, want: booking.Tier{Day: booking.Weekday, Band: booking.Afternoon}},
		{name: "18:00 is evening", date: booking.NewDate(2025, time.March, 7), start: 18 * 60, want: booking.Tier{Day: booking.Weekday, Band: booking.Evening}},
		{name: "saturday evening", date: booking.NewDate(2025, time.March, 8), start: 18 * 60, want: booking.Tier{Day: booking.Weekend, Band: booking.Evening}},
		{name: "sunday midnight start", date: booking.NewDate(2025, time.March, 9), start: 0, want: booking.Tier{Day: booking.Weekend, Band: booking.Morning}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Classify(tt.date, tt.start))
		})
	}
}

func TestClassify_TotalAndDeterministic(t *testing.T) {
	start := booking.NewDate(2025, time.January, 1)
	for day := 0; day < 14; day++ {
		d := start.AddDays(day)
		for m := booking.Minutes(0); m < booking.MinutesPerDay; m++ {
			tier := booking.Classify(d, m)
			assert.True(t, tier.Day.IsValid())
			assert.True(t, tier.Band.IsValid())
			if tier != booking.Classify(d, m) {
				t.Fatalf("classification of %s %s is not deterministic", d, m)
			}
		}
	}
}
