package response

import (
	"time"

	"field-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type HoldResponse struct {
	HoldID    uuid.UUID `json:"holdId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Units     int       `json:"units"`
}

func FromAcquireHoldResult(r *commands.AcquireHoldResult) *HoldResponse {
	return &HoldResponse{
		HoldID:    r.HoldID,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		Units:     r.Units,
	}
}
