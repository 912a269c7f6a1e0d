//go:build unit

package request

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, registerOn(v))
	return v
}

func TestWindowFields_Tags(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		in    WindowFields
		valid bool
	}{
		{name: "ok", in: WindowFields{Date: "2025-03-08", Start: "18:00", End: "19:30"}, valid: true},
		{name: "end at midnight", in: WindowFields{Date: "2025-03-08", Start: "22:00", End: "24:00"}, valid: true},
		{name: "bad date", in: WindowFields{Date: "2025-02-30", Start: "18:00", End: "19:00"}},
		{name: "single digit hour", in: WindowFields{Date: "2025-03-08", Start: "8:00", End: "19:00"}},
		{name: "minute out of range", in: WindowFields{Date: "2025-03-08", Start: "18:60", End: "19:00"}},
		{name: "past midnight", in: WindowFields{Date: "2025-03-08", Start: "18:00", End: "24:30"}},
		{name: "missing end", in: WindowFields{Date: "2025-03-08", Start: "18:00"}},
		{name: "signed hour", in: WindowFields{Date: "2025-03-08", Start: "+1:30", End: "19:00"}},
		{name: "signed minute", in: WindowFields{Date: "2025-03-08", Start: "18:+5", End: "19:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRateQuery_Tags(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(RateQuery{DayType: "weekend", TimeBand: "afternoon"}))
	assert.Error(t, v.Struct(RateQuery{DayType: "holiday", TimeBand: "afternoon"}))
	assert.Error(t, v.Struct(RateQuery{DayType: "weekday", TimeBand: "night"}))
}

func TestFinalizeBookingRequest_ToInput(t *testing.T) {
	v := newValidator(t)
	req := FinalizeBookingRequest{
		ResourceID:   uuid.New(),
		WindowFields: WindowFields{Date: "2025-03-08", Start: "18:00", End: "19:30"},
		Channel:      "in_person",
		HoldToken:    "  tok_1  ",
	}
	require.NoError(t, v.Struct(req))

	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Equal(t, "tok_1", in.HoldToken)
	assert.Equal(t, 90, in.Window.Length())

	req.Channel = "fax"
	assert.Error(t, v.Struct(req))

	req.Channel = "online"
	req.Start, req.End = "19:30", "18:00"
	require.NoError(t, v.Struct(req))
	_, err = req.ToInput()
	assert.Error(t, err)
}
