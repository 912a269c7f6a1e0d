package converter

import (
	"field-booking/internal/domain/booking"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	date, start, end := WindowToInfra(b.Window())
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		ResourceID:  b.ResourceID(),
		CustomerID:  b.CustomerID(),
		BookingDate: date,
		StartMinute: start,
		EndMinute:   end,
		Channel:     b.Channel().String(),
		CreatedBy:   b.CreatedBy(),
		TotalPrice:  b.TotalPrice().Amount(),
		HoldID:      pgconv.UUIDPtrToPgtype(b.HoldID()),
		Status:      b.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	window, err := WindowFromRow(row.BookingDate, row.StartMinute, row.EndMinute)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(booking.ReconstructParams{
		ID:         row.ID,
		ResourceID: row.ResourceID,
		CustomerID: row.CustomerID,
		Window:     window,
		Channel:    row.Channel,
		CreatedBy:  row.CreatedBy,
		TotalPrice: row.TotalPrice,
		Status:     row.Status,
		HoldID:     pgconv.UUIDPtrFromPgtype(row.HoldID),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
