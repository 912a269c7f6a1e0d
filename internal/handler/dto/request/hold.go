package request

import (
	"strings"

	"field-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type AcquireHoldRequest struct {
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	WindowFields
	Owner string `json:"owner,omitempty" binding:"omitempty,max=255"`
}

func (r AcquireHoldRequest) ToInput() (commands.AcquireHoldInput, error) {
	w, err := r.ToWindow()
	if err != nil {
		return commands.AcquireHoldInput{}, err
	}
	return commands.AcquireHoldInput{
		ResourceID: r.ResourceID,
		Window:     w,
		Owner:      strings.TrimSpace(r.Owner),
	}, nil
}
