package request

import (
	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	WindowFields
}

type BulkAvailabilityRequest struct {
	ResourceIDs []uuid.UUID `json:"resourceIds" binding:"required,min=1,max=200"`
	WindowFields
}

type QuoteQuery struct {
	WindowFields
}
