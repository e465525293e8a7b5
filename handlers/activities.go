// File: handlers/activities.go
package handlers

import (
	"errors"
	"net/http"

	"hobyhub/api"
	"hobyhub/database/localstore"
	"hobyhub/middleware"
	"hobyhub/models"
	"hobyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ViewEnqueuer schedules view-count increments.
type ViewEnqueuer interface {
	Enqueue(activityID string) error
}

// ActivityHandler serves activity details, using the session handoff cache
// to avoid a re-fetch when the client navigates from the list.
type ActivityHandler struct {
	API     *api.Client
	Handoff localstore.Store
	Views   ViewEnqueuer
}

func NewActivityHandler(client *api.Client, handoff localstore.Store, views ViewEnqueuer) *ActivityHandler {
	return &ActivityHandler{API: client, Handoff: handoff, Views: views}
}

func handoffKey(sessionID, activityID string) string {
	return utils.SessionHandoffPrefix + sessionID + ":" + activityID
}

// GetActivity handles GET /api/activities/:id. Every visit enqueues a
// view-count increment, cached or not.
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activityID := c.Param("id")
	sessionID := middleware.SessionID(c)

	var detail models.ActivityDetail
	err := h.Handoff.Get(c.Request.Context(), handoffKey(sessionID, activityID), &detail)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			utils.GetLogger().Warn("Handoff cache read failed", zap.Error(err))
		}
		fetched, fetchErr := h.API.GetActivity(c.Request.Context(), activityID)
		if fetchErr != nil {
			var apiErr *api.Error
			if errors.As(fetchErr, &apiErr) && apiErr.Status == http.StatusNotFound {
				c.JSON(http.StatusNotFound, gin.H{"message": "No activity data available"})
				return
			}
			utils.JSONError(c, http.StatusBadGateway, "Failed to fetch activity", fetchErr.Error())
			return
		}
		detail = *fetched

		if cacheErr := h.Handoff.SetTTL(c.Request.Context(), handoffKey(sessionID, activityID), detail, utils.SessionHandoffTTL); cacheErr != nil {
			utils.GetLogger().Warn("Handoff cache write failed", zap.Error(cacheErr))
		}
	}

	if err := h.Views.Enqueue(activityID); err != nil {
		// The visit still succeeds; the count is best effort.
		utils.GetLogger().Warn("Failed to enqueue view count", zap.String("activity", activityID), zap.Error(err))
	}

	c.JSON(http.StatusOK, detail)
}

// StoreHandoff handles POST /api/activities/:id/handoff: the list surface
// hands the already-rendered activity to the detail surface so it can open
// without a fetch.
func (h *ActivityHandler) StoreHandoff(c *gin.Context) {
	activityID := c.Param("id")
	sessionID := middleware.SessionID(c)

	var detail models.ActivityDetail
	if err := c.ShouldBindJSON(&detail); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid handoff payload", err.Error())
		return
	}
	if detail.Activity.ID != activityID {
		utils.JSONError(c, http.StatusBadRequest, "Handoff id mismatch", detail.Activity.ID)
		return
	}

	if err := h.Handoff.SetTTL(c.Request.Context(), handoffKey(sessionID, activityID), detail, utils.SessionHandoffTTL); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store handoff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stored"})
}
