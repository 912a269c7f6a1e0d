package response

import (
	"time"

	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BusySlotResponse struct {
	Source    string     `json:"source"`
	RefID     uuid.UUID  `json:"refId"`
	Date      string     `json:"date"`
	Start     string     `json:"start"`
	End       string     `json:"end"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type AvailabilityResponse struct {
	ResourceID uuid.UUID          `json:"resourceId"`
	Available  bool               `json:"available"`
	Reason     string             `json:"reason,omitempty"`
	Conflicts  []BusySlotResponse `json:"conflicts"`
}

type BulkAvailabilityResponse struct {
	Date    string                 `json:"date"`
	Start   string                 `json:"start"`
	End     string                 `json:"end"`
	Free    []uuid.UUID            `json:"free"`
	Results []AvailabilityResponse `json:"results"`
}

func FromBusySlots(views []queries.BusySlotView) ([]BusySlotResponse, error) {
	out := make([]BusySlotResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	conflicts, err := FromBusySlots(v.Conflicts)
	if err != nil {
		return nil, err
	}
	return &AvailabilityResponse{
		ResourceID: v.ResourceID,
		Available:  v.Available,
		Reason:     v.Reason,
		Conflicts:  conflicts,
	}, nil
}

func FromBulkAvailabilityView(v *queries.BulkAvailabilityView) (*BulkAvailabilityResponse, error) {
	resp := &BulkAvailabilityResponse{
		Date:    v.Date,
		Start:   v.Start,
		End:     v.End,
		Free:    v.Free,
		Results: make([]AvailabilityResponse, 0, len(v.Results)),
	}
	if resp.Free == nil {
		resp.Free = []uuid.UUID{}
	}
	for i := range v.Results {
		r, err := FromAvailabilityView(&v.Results[i])
		if err != nil {
			return nil, err
		}
		resp.Results = append(resp.Results, *r)
	}
	return resp, nil
}
