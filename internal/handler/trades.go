package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradejournal/internal/repository"
	"tradejournal/internal/service"
)

type TradeHandler struct {
	Service  *service.TradeService
	Location *time.Location
	Logger   *zap.Logger
}

func (h *TradeHandler) Register(r gin.IRouter) {
	g := r.Group("/trades")
	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/bulk-delete", h.bulkDelete)
	g.POST("/bulk-tag", h.bulkTag)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// @Summary List trades
// @Description Paged trades, newest first, with a summary over every matching trade in meta.summary.
// @Tags trades
// @Param limit query int false "page size (max 500)"
// @Param offset query int false "offset"
// @Param order_by query string false "entry_time|exit_time|pnl|symbol|created_at"
// @Param asc query bool false "ascending order"
// @Param symbol query string false "symbol"
// @Param session query string false "session"
// @Param status query string false "Open|Closed"
// @Param strategy query string false "strategy"
// @Param date_from query string false "YYYY-MM-DD or RFC3339"
// @Param date_to query string false "YYYY-MM-DD or RFC3339"
// @Success 200 {object} apiResponse{data=[]models.Trade}
// @Security BearerAuth
// @Router /api/trades [get]
func (h *TradeHandler) list(c *gin.Context) {
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
	limit := repository.NormalizeLimit(intQuery(c, "limit", repository.DefaultListLimit))
	offset := repository.NormalizeOffset(intQuery(c, "offset", 0))
	params := repository.ListTradesParams{
		UserID:  userID,
		Filter:  filter,
		Limit:   limit,
		Offset:  offset,
		OrderBy: c.Query("order_by"),
		Asc:     boolQueryPtr(c, "asc"),
	}
	page, err := h.Service.List(c.Request.Context(), params)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	meta := paginationMeta(limit, offset, page.Total)
	meta["summary"] = page.Summary
	Ok(c, page.Items, meta)
}

// @Summary Get trade
// @Tags trades
// @Param id path int true "trade id"
// @Success 200 {object} apiResponse{data=models.Trade}
// @Failure 404 {object} apiResponse
// @Security BearerAuth
// @Router /api/trades/{id} [get]
func (h *TradeHandler) get(c *gin.Context) {
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
	item, err := h.Service.Get(c.Request.Context(), userID, id)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Create trade
// @Tags trades
// @Param body body service.TradeInput true "trade"
// @Success 201 {object} apiResponse{data=models.Trade}
// @Failure 400 {object} apiResponse
// @Security BearerAuth
// @Router /api/trades [post]
func (h *TradeHandler) create(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.TradeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Service.Create(c.Request.Context(), userID, req)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Created(c, item)
}

// @Summary Update trade
// @Description Absent fields keep their value; a tags list replaces the trade's tags; screenshots are appended.
// @Tags trades
// @Param id path int true "trade id"
// @Param body body service.TradePatch true "fields to change"
// @Success 200 {object} apiResponse{data=models.Trade}
// @Failure 400 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Security BearerAuth
// @Router /api/trades/{id} [put]
func (h *TradeHandler) update(c *gin.Context) {
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
	var req service.TradePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete trade
// @Tags trades
// @Param id path int true "trade id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Security BearerAuth
// @Router /api/trades/{id} [delete]
func (h *TradeHandler) delete(c *gin.Context) {
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
	if err := h.Service.Delete(c.Request.Context(), userID, id); err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, gin.H{"id": id}, nil)
}

type bulkDeleteRequest struct {
	TradeIDs []uint64 `json:"trade_ids"`
}

// @Summary Delete several trades
// @Tags trades
// @Param body body bulkDeleteRequest true "trade ids"
// @Success 200 {object} apiResponse
// @Security BearerAuth
// @Router /api/trades/bulk-delete [post]
func (h *TradeHandler) bulkDelete(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	n, err := h.Service.BulkDelete(c.Request.Context(), userID, req.TradeIDs)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, gin.H{"deleted": n}, nil)
}

type bulkTagRequest struct {
	TradeIDs []uint64 `json:"trade_ids"`
	Tags     []string `json:"tags"`
}

// @Summary Tag several trades
// @Description Adds tags to the listed trades, creating missing tags. Existing tags stay.
// @Tags trades
// @Param body body bulkTagRequest true "trade ids and tag names"
// @Success 200 {object} apiResponse
// @Security BearerAuth
// @Router /api/trades/bulk-tag [post]
func (h *TradeHandler) bulkTag(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req bulkTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	n, err := h.Service.BulkTag(c.Request.Context(), userID, req.TradeIDs, req.Tags)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, gin.H{"tagged": n}, nil)
}
