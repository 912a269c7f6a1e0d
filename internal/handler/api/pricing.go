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

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Get rate
// @Description Per-unit price for a resource type in one tier
// @Tags pricing
// @Produce json
// @Param id path string true "Resource type ID"
// @Param dayType query string true "weekday or weekend"
// @Param timeBand query string true "morning, afternoon or evening"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /resource-types/{id}/rates [get]
func (h *PricingHandler) GetRate(c *gin.Context) {
	typeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource type id", nil)
		return
	}
	var req reqdto.RateQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		abortBinding(c, err)
		return
	}

	view, err := h.q.GetPrice(c.Request.Context(), typeID, req.ToTier())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromRateView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quote
// @Description Price a window on a resource without reserving it
// @Tags pricing
// @Produce json
// @Param id path string true "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start (HH:MM)"
// @Param end query string true "End (HH:MM)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /resources/{id}/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}
	var req reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		abortBinding(c, err)
		return
	}
	window, err := req.ToWindow()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), resourceID, window)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromQuoteView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
