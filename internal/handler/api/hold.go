package api

import (
	"net/http"

	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/handler/httperr"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type HoldHandler struct {
	cmds commands.HoldCommands
}

func NewHoldHandler(cmds commands.HoldCommands) *HoldHandler {
	return &HoldHandler{cmds: cmds}
}

// @Summary Acquire hold
// @Description Place a short-lived hold on a free window; the returned token finalizes it
// @Tags holds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AcquireHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /holds [post]
func (h *HoldHandler) Acquire(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	var req reqdto.AcquireHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	result, err := h.cmds.Acquire(c.Request.Context(), act, in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAcquireHoldResult(result))
}

// @Summary Release hold
// @Description Give a hold back early. Unknown or finished holds are a no-op
// @Tags holds
// @Security BearerAuth
// @Param token path string true "Hold token"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /holds/{token} [delete]
func (h *HoldHandler) Release(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.Unauthorized(c)
		return
	}
	if err := h.cmds.Release(c.Request.Context(), act, c.Param("token")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
