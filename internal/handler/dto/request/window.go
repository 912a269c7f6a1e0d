package request

import (
	"field-booking/internal/domain/booking"
)

// WindowFields is embedded by every request naming a date and a time range.
// Shape is checked by the binding tags; ordering and bounds by ToWindow.
type WindowFields struct {
	Date  string `json:"date" form:"date" binding:"required,datestr" example:"2025-03-08"`
	Start string `json:"start" form:"start" binding:"required,clock" example:"18:00"`
	End   string `json:"end" form:"end" binding:"required,clock" example:"19:30"`
}

func (w WindowFields) ToWindow() (booking.TimeWindow, error) {
	return booking.ParseWindow(w.Date, w.Start, w.End)
}
