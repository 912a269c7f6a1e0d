//go:build unit || e2e

package builder

import (
	"time"

	"field-booking/internal/domain/booking"
	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	CustomerID   uuid.UUID
	Date         string
	Start        string
	End          string
	Channel      booking.Channel
	CreatedBy    uuid.UUID
	TotalPrice   int64
	HoldID       *uuid.UUID
	HoldToken    string
	Status       booking.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	customer := uuid.New()
	return &BookingBuilder{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Pitch 1",
		CustomerID:   customer,
		Date:         DefaultDate,
		Start:        DefaultStart,
		End:          DefaultEnd,
		Channel:      booking.ChannelOnline,
		CreatedBy:    customer,
		TotalPrice:   120000,
		Status:       booking.StatusConfirmed,
		CreatedAt:    time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Window() booking.TimeWindow {
	return MustWindow(b.Date, b.Start, b.End)
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	bk, err := booking.Reconstruct(booking.ReconstructParams{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		CustomerID: b.CustomerID,
		Window:     b.Window(),
		Channel:    string(b.Channel),
		CreatedBy:  b.CreatedBy,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		HoldID:     b.HoldID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	})
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	date, start, end := converter.WindowToInfra(b.Window())
	holdID := pgtype.UUID{}
	if b.HoldID != nil {
		holdID = pgtype.UUID{Bytes: *b.HoldID, Valid: true}
	}
	return sqlc.Bookings{
		ID:          b.ID,
		ResourceID:  b.ResourceID,
		CustomerID:  b.CustomerID,
		BookingDate: date,
		StartMinute: start,
		EndMinute:   end,
		Channel:     string(b.Channel),
		CreatedBy:   b.CreatedBy,
		TotalPrice:  b.TotalPrice,
		HoldID:      holdID,
		Status:      string(b.Status),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		CustomerID:   b.CustomerID,
		Date:         b.Date,
		Start:        b.Start,
		End:          b.End,
		Channel:      string(b.Channel),
		CreatedBy:    b.CreatedBy,
		TotalPrice:   b.TotalPrice,
		HoldID:       b.HoldID,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		Date:         b.Date,
		Start:        b.Start,
		End:          b.End,
		Channel:      string(b.Channel),
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildFinalizeRequestDTO() reqdto.FinalizeBookingRequest {
	req := reqdto.FinalizeBookingRequest{
		ResourceID:   b.ResourceID,
		WindowFields: reqdto.WindowFields{Date: b.Date, Start: b.Start, End: b.End},
		Channel:      string(b.Channel),
		HoldToken:    b.HoldToken,
	}
	if b.CustomerID != b.CreatedBy {
		id := b.CustomerID
		req.CustomerID = &id
	}
	return req
}
