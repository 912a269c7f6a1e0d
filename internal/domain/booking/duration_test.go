//go:build unit

package booking_test

import (
	"testing"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/resource"
	"field-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountUnits(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		unit      resource.Unit
		wantUnits int
		wantErr   error
	}{
		{name: "two hours of 60", start: "18:00", end: "20:00", unit: resource.UnitHour, wantUnits: 2},
		{name: "one 90 session", start: "09:00", end: "10:30", unit: resource.UnitHalfSession, wantUnits: 1},
		{name: "two 120 sessions", start: "06:00", end: "10:00", unit: resource.UnitFullSession, wantUnits: 2},
		{name: "ends at midnight", start: "22:00", end: "24:00", unit: resource.UnitHour, wantUnits: 2},
		{name: "90 minutes with 60 unit", start: "18:00", end: "19:30", unit: resource.UnitHour, wantErr: errs.ErrUnitMismatch},
		{name: "60 minutes with 120 unit", start: "18:00", end: "19:00", unit: resource.UnitFullSession, wantErr: errs.ErrUnitMismatch},
		{name: "empty window", start: "18:00", end: "18:00", unit: resource.UnitHour, wantErr: errs.ErrInvalidWindow},
		{name: "reversed window", start: "20:00", end: "18:00", unit: resource.UnitHour, wantErr: errs.ErrInvalidWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := booking.ParseClock(tt.start)
			require.NoError(t, err)
			end, err := booking.ParseClock(tt.end)
			require.NoError(t, err)

			units, err := booking.CountUnits(start, end, tt.unit)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUnits, units)
		})
	}
}

func TestCountUnits_MismatchCarriesDetail(t *testing.T) {
	_, err := booking.CountUnits(18*60, 19*60+30, resource.UnitHour)
	require.Error(t, err)

	var mismatch *booking.UnitMismatchError
	require.True(t, errs.As(err, &mismatch))
	assert.Equal(t, resource.UnitHour, mismatch.Unit)
	assert.Equal(t, 90, mismatch.Duration)
}

// Sweeps every start/end pair on a 15 minute grid for each unit.
func TestCountUnits_Exhaustive(t *testing.T) {
	for _, unit := range []resource.Unit{resource.UnitHour, resource.UnitHalfSession, resource.UnitFullSession} {
		for start := booking.Minutes(0); start <= booking.MinutesPerDay; start += 15 {
			for end := booking.Minutes(0); end <= booking.MinutesPerDay; end += 15 {
				units, err := booking.CountUnits(start, end, unit)
				diff := int(end - start)
				switch {
				case diff <= 0:
					require.True(t, errs.Is(err, errs.ErrInvalidWindow), "%s-%s", start, end)
				case diff%unit.Minutes() != 0:
					require.True(t, errs.Is(err, errs.ErrUnitMismatch), "%s-%s", start, end)
				default:
					require.NoError(t, err)
					require.Equal(t, diff/unit.Minutes(), units)
				}
			}
		}
	}
}
