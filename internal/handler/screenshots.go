package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradejournal/internal/service"
)

type ScreenshotHandler struct {
	Service *service.TradeService
	Logger  *zap.Logger
}

func (h *ScreenshotHandler) Register(r gin.IRouter) {
	r.DELETE("/screenshots/:id", h.delete)
}

// @Summary Delete screenshot record
// @Tags trades
// @Param id path int true "screenshot id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Security BearerAuth
// @Router /api/screenshots/{id} [delete]
func (h *ScreenshotHandler) delete(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Service.DeleteScreenshot(c.Request.Context(), userID, id); err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, gin.H{"id": id}, nil)
}
