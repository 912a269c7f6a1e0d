package response

import (
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RateResponse struct {
	ResourceTypeID uuid.UUID `json:"resourceTypeId"`
	DayType        string    `json:"dayType"`
	TimeBand       string    `json:"timeBand"`
	PricePerUnit   int64     `json:"pricePerUnit"`
}

type QuoteResponse struct {
	ResourceID   uuid.UUID `json:"resourceId"`
	Units        int       `json:"units"`
	UnitMinutes  int       `json:"unitMinutes"`
	DayType      string    `json:"dayType"`
	TimeBand     string    `json:"timeBand"`
	PricePerUnit int64     `json:"pricePerUnit"`
	TotalPrice   int64     `json:"totalPrice"`
}

func FromRateView(v *queries.RateView) (*RateResponse, error) {
	var resp RateResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	var resp QuoteResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
