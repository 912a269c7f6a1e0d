package api

import (
	"log/slog"
	"net/http"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/hold"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/handler/httperr"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// abortBinding reports request shape errors with the failing fields.
func abortBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"fields": fields})
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

// abortWithUseCaseError maps the booking error taxonomy onto HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", gin.H{"reason": err.Error()})

	case errs.Is(err, errs.ErrUnitMismatch):
		var mm *booking.UnitMismatchError
		var detail any
		if errs.As(err, &mm) {
			detail = gin.H{"unitMinutes": mm.Unit.Minutes(), "durationMinutes": mm.Duration}
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Duration is not a multiple of the resource unit", detail)

	case errs.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot unavailable", conflictDetail(err))

	case errs.Is(err, errs.ErrRateNotFound):
		var rn *booking.RateNotFoundError
		var detail any
		if errs.As(err, &rn) {
			detail = gin.H{
				"resourceTypeId": rn.Key.ResourceTypeID,
				"dayType":        rn.Key.Tier.Day,
				"timeBand":       rn.Key.Tier.Band,
			}
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No rate for this resource type and tier", detail)

	case errs.Is(err, errs.ErrHoldExpired), errs.Is(err, errs.ErrHoldNotActive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Hold cannot be used", holdDetail(err))

	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)

	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)

	case errs.Is(err, errs.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)

	case errs.Is(err, commands.ErrCustomerRequired),
		errs.Is(err, booking.ErrInvalidChannel),
		errs.Is(err, hold.ErrEmptyOwner),
		errs.Is(err, hold.ErrOwnerTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)

	default:
		slog.Error("unhandled use case error", "error", err, "path", c.Request.URL.Path, "stack", errs.ExtractStackLines(err, 8))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func conflictDetail(err error) any {
	var ce *booking.ConflictError
	if !errs.As(err, &ce) {
		return nil
	}
	detail := gin.H{"reason": ce.Reason}
	if len(ce.Conflicts) > 0 {
		conflicts, cerr := resdto.FromBusySlots(queries.ToBusySlotViews(ce.Conflicts))
		if cerr == nil {
			detail["conflicts"] = conflicts
		}
	}
	var se *hold.StateError
	if errs.As(err, &se) {
		detail["holdState"] = se.State
		detail["holdReason"] = se.Reason
	}
	return detail
}

func holdDetail(err error) any {
	var se *hold.StateError
	if !errs.As(err, &se) {
		return nil
	}
	return gin.H{"holdId": se.HoldID, "holdState": se.State, "holdReason": se.Reason}
}
