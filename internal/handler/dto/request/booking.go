package request

import (
	"strings"

	"field-booking/internal/domain/booking"
	"field-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type FinalizeBookingRequest struct {
	ResourceID uuid.UUID  `json:"resourceId" binding:"required"`
	CustomerID *uuid.UUID `json:"customerId,omitempty"`
	WindowFields
	Channel   string `json:"channel" binding:"required,channel" example:"online"`
	HoldToken string `json:"holdToken,omitempty"`
}

func (r FinalizeBookingRequest) ToInput() (commands.FinalizeInput, error) {
	w, err := r.ToWindow()
	if err != nil {
		return commands.FinalizeInput{}, err
	}
	return commands.FinalizeInput{
		ResourceID: r.ResourceID,
		CustomerID: r.CustomerID,
		Window:     w,
		Channel:    booking.Channel(r.Channel),
		HoldToken:  strings.TrimSpace(r.HoldToken),
	}, nil
}

type ListBookingsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}
