package handlers

import (
	"net/http"

	"hobyhub/api"
	"hobyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler proxies category listings from the upstream.
type CategoryHandler struct {
	API *api.Client
}

func NewCategoryHandler(client *api.Client) *CategoryHandler {
	return &CategoryHandler{API: client}
}

// ListCategories handles GET /api/categories.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.API.ListCategories(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("ListCategories: upstream call failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListSubCategories handles GET /api/categories/:id/subcategories.
func (h *CategoryHandler) ListSubCategories(c *gin.Context) {
	subs, err := h.API.ListSubCategories(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("ListSubCategories: upstream call failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch subcategories", err.Error())
		return
	}
	c.JSON(http.StatusOK, subs)
}
