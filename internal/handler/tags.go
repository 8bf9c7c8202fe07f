package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradejournal/internal/service"
)

type TagHandler struct {
	Service *service.TagService
	Logger  *zap.Logger
}

func (h *TagHandler) Register(r gin.IRouter) {
	g := r.Group("/tags")
	g.GET("", h.list)
	g.POST("", h.create)
	g.DELETE("/:id", h.delete)
}

// @Summary List tags
// @Description Every tag with the number of the caller's trades carrying it.
// @Tags tags
// @Success 200 {object} apiResponse{data=[]models.TagUsage}
// @Security BearerAuth
// @Router /api/tags [get]
func (h *TagHandler) list(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Ok(c, items, nil)
}

type createTagRequest struct {
	Name string `json:"name"`
}

// @Summary Create tag
// @Tags tags
// @Param body body createTagRequest true "tag"
// @Success 201 {object} apiResponse{data=models.Tag}
// @Failure 409 {object} apiResponse
// @Security BearerAuth
// @Router /api/tags [post]
func (h *TagHandler) create(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	if _, ok := currentUser(c); !ok {
		return
	}
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	item, err := h.Service.Create(c.Request.Context(), req.Name)
	if err != nil {
		serviceError(c, h.Logger, err)
		return
	}
	Created(c, item)
}

// @Summary Delete tag
// @Description Refused with 403 while trades of other users carry the tag.
// @Tags tags
// @Param id path int true "tag id"
// @Success 200 {object} apiResponse
// @Failure 403 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Security BearerAuth
// @Router /api/tags/{id} [delete]
func (h *TagHandler) delete(c *gin.Context) {
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
