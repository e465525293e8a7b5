// File: handlers/favorites.go
package handlers

import (
	"net/http"

	"hobyhub/middleware"
	"hobyhub/models"
	"hobyhub/services/favorites"
	"hobyhub/utils"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler exposes the session's liked activities.
type FavoritesHandler struct {
	Svc favorites.FavoritesService
}

func NewFavoritesHandler(svc favorites.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{Svc: svc}
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	favs, err := h.Svc.List(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load favorites", err.Error())
		return
	}
	c.JSON(http.StatusOK, favs)
}

// Toggle handles POST /api/favorites/toggle. The body carries the full
// activity snapshot so un-fetched tabs can favorite too.
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid activity payload", err.Error())
		return
	}
	if activity.ID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid activity payload", "missing activity id")
		return
	}

	sessionID := middleware.SessionID(c)
	favorited, err := h.Svc.Toggle(c.Request.Context(), sessionID, activity)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to toggle favorite", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"activityId": activity.ID, "favorited": favorited})
}
