package response

import (
	"time"

	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingConfirmationResponse struct {
	BookingID    uuid.UUID  `json:"bookingId"`
	HoldID       *uuid.UUID `json:"holdId,omitempty"`
	Units        int        `json:"units"`
	DayType      string     `json:"dayType"`
	TimeBand     string     `json:"timeBand"`
	PricePerUnit int64      `json:"pricePerUnit"`
	TotalPrice   int64      `json:"totalPrice"`
}

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	ResourceID   uuid.UUID  `json:"resourceId"`
	ResourceName string     `json:"resourceName"`
	CustomerID   uuid.UUID  `json:"customerId"`
	Date         string     `json:"date"`
	Start        string     `json:"start"`
	End          string     `json:"end"`
	Channel      string     `json:"channel"`
	CreatedBy    uuid.UUID  `json:"createdBy"`
	TotalPrice   int64      `json:"totalPrice"`
	HoldID       *uuid.UUID `json:"holdId,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	Date         string    `json:"date"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
	Channel      string    `json:"channel"`
	TotalPrice   int64     `json:"totalPrice"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings   []BookingListItemResponse `json:"bookings"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromFinalizeResult(r *commands.FinalizeResult) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		BookingID:    r.BookingID,
		HoldID:       r.HoldID,
		Units:        r.Quote.Units,
		DayType:      r.Quote.Tier.Day.String(),
		TimeBand:     r.Quote.Tier.Band.String(),
		PricePerUnit: r.Quote.PerUnit.Amount(),
		TotalPrice:   r.Quote.Total.Amount(),
	}
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) (*BookingListResponse, error) {
	resp := &BookingListResponse{Bookings: make([]BookingListItemResponse, 0, len(items))}
	for _, it := range items {
		var r BookingListItemResponse
		if err := copier.Copy(&r, it); err != nil {
			return nil, err
		}
		resp.Bookings = append(resp.Bookings, r)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}
