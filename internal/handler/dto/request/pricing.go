package request

import (
	"field-booking/internal/domain/booking"
)

type RateQuery struct {
	DayType  string `form:"dayType" binding:"required,daytype" example:"weekday"`
	TimeBand string `form:"timeBand" binding:"required,timeband" example:"evening"`
}

func (q RateQuery) ToTier() booking.Tier {
	return booking.Tier{Day: booking.DayType(q.DayType), Band: booking.TimeBand(q.TimeBand)}
}
