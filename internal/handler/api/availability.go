package api

import (
	"net/http"

	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/handler/httperr"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check availability
// @Description Report whether a resource is free for a window, with the conflicting slots when it is not
// @Tags availability
// @Produce json
// @Param id path string true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start (HH:MM)"
// @Param end query string true "End (HH:MM, 24:00 allowed)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		abortBinding(c, err)
		return
	}
	window, err := req.ToWindow()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.Check(c.Request.Context(), resourceID, window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromAvailabilityView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Bulk availability
// @Description Check many resources against one window on a single snapshot
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.BulkAvailabilityRequest true "Resources and window"
// @Success 200 {object} resdto.BulkAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/bulk [post]
func (h *AvailabilityHandler) CheckBulk(c *gin.Context) {
	var req reqdto.BulkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}
	window, err := req.ToWindow()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.CheckBulk(c.Request.Context(), req.ResourceIDs, window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromBulkAvailabilityView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
