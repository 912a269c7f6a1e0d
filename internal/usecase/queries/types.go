package queries

import (
	"time"

	"field-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	ResourceID   uuid.UUID  `json:"resource_id"`
	ResourceName string     `json:"resource_name"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	Date         string     `json:"date"`
	Start        string     `json:"start"`
	End          string     `json:"end"`
	Channel      string     `json:"channel"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	TotalPrice   int64      `json:"total_price"`
	HoldID       *uuid.UUID `json:"hold_id,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Date         string    `json:"date"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
	Channel      string    `json:"channel"`
	TotalPrice   int64     `json:"total_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BusySlotView struct {
	Source    string     `json:"source"`
	RefID     uuid.UUID  `json:"ref_id"`
	Date      string     `json:"date"`
	Start     string     `json:"start"`
	End       string     `json:"end"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type AvailabilityView struct {
	ResourceID uuid.UUID      `json:"resource_id"`
	Available  bool           `json:"available"`
	Reason     string         `json:"reason,omitempty"`
	Conflicts  []BusySlotView `json:"conflicts"`
}

type BulkAvailabilityView struct {
	Date    string             `json:"date"`
	Start   string             `json:"start"`
	End     string             `json:"end"`
	Free    []uuid.UUID        `json:"free"`
	Results []AvailabilityView `json:"results"`
}

type RateView struct {
	ResourceTypeID uuid.UUID `json:"resource_type_id"`
	DayType        string    `json:"day_type"`
	TimeBand       string    `json:"time_band"`
	PricePerUnit   int64     `json:"price_per_unit"`
}

type QuoteView struct {
	ResourceID   uuid.UUID `json:"resource_id"`
	Units        int       `json:"units"`
	UnitMinutes  int       `json:"unit_minutes"`
	DayType      string    `json:"day_type"`
	TimeBand     string    `json:"time_band"`
	PricePerUnit int64     `json:"price_per_unit"`
	TotalPrice   int64     `json:"total_price"`
}

func ToBusySlotViews(slots []booking.BusySlot) []BusySlotView {
	views := make([]BusySlotView, len(slots))
	for i, s := range slots {
		views[i] = BusySlotView{
			Source:    string(s.Source),
			RefID:     s.RefID,
			Date:      s.Window.Date().String(),
			Start:     s.Window.Start().String(),
			End:       s.Window.End().String(),
			ExpiresAt: s.ExpiresAt,
		}
	}
	return views
}
