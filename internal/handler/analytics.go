package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradejournal/internal/service"
)

type AnalyticsHandler struct {
	Service  *service.AnalyticsService
	Location *time.Location
	Logger   *zap.Logger
}

func (h *AnalyticsHandler) Register(r gin.IRouter) {
	g := r.Group("/analytics")
	g.GET("", h.snapshot)
	g.GET("/performance", h.performance)
	g.GET("/risk-metrics", h.riskMetrics)
}

// @Summary Analytics snapshot
// @Description Headline metrics, P&L and drawdown series, breakdowns and the weekly heat-map for the caller's trades.
// @Tags analytics
// @Param symbol query string false "symbol"
// @Param session query string false "session (NY|London|Asian)"
// @Param status query string false "Open|Closed"
// @Param strategy query string false "strategy"
// @Param date_from query string false "YYYY-MM-DD or RFC3339, inclusive"
// @Param date_to query string false "YYYY-MM-DD (whole day) or RFC3339"
// @Success 200 {object} apiResponse{data=analytics.Snapshot}
// @Failure 400 {object} apiResponse
// @Failure 502 {object} apiResponse
// @Security BearerAuth
// @Router /api/analytics [get]
func (h *AnalyticsHandler) snapshot(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filter, err := tradeFilterQuery(c, h.Location)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	snap, err := h.Service.Snapshot(c.Request.Context(), userID, filter)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, snap, nil)
}

// @Summary Performance breakdowns
// @Tags analytics
// @Param symbol query string false "symbol"
// @Param session query string false "session"
// @Param status query string false "Open|Closed"
// @Param strategy query string false "strategy"
// @Param date_from query string false "YYYY-MM-DD or RFC3339"
// @Param date_to query string false "YYYY-MM-DD or RFC3339"
// @Success 200 {object} apiResponse{data=analytics.PerformanceView}
// @Security BearerAuth
// @Router /api/analytics/performance [get]
func (h *AnalyticsHandler) performance(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filter, err := tradeFilterQuery(c, h.Location)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	view, err := h.Service.Performance(c.Request.Context(), userID, filter)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, view, nil)
}

// @Summary Risk metrics
// @Tags analytics
// @Param symbol query string false "symbol"
// @Param session query string false "session"
// @Param status query string false "Open|Closed"
// @Param strategy query string false "strategy"
// @Param date_from query string false "YYYY-MM-DD or RFC3339"
// @Param date_to query string false "YYYY-MM-DD or RFC3339"
// @Success 200 {object} apiResponse{data=analytics.RiskView}
// @Security BearerAuth
// @Router /api/analytics/risk-metrics [get]
func (h *AnalyticsHandler) riskMetrics(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filter, err := tradeFilterQuery(c, h.Location)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	view, err := h.Service.Risk(c.Request.Context(), userID, filter)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, view, nil)
}
