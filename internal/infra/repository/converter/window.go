package converter

import (
	"field-booking/internal/domain/booking"
	"field-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func WindowFromRow(date pgtype.Date, start, end int32) (booking.TimeWindow, error) {
	return booking.NewTimeWindow(
		booking.DateOf(pgconv.DateFromPgtype(date)),
		booking.Minutes(start),
		booking.Minutes(end),
	)
}

func WindowToInfra(w booking.TimeWindow) (pgtype.Date, int32, int32) {
	return pgconv.DateToPgtype(w.Date().Time()), int32(w.Start()), int32(w.End()) // #nosec G115 -- minutes are bounded by a day
}
