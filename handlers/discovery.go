// File: handlers/discovery.go
package handlers

import (
	"net/http"

	"hobyhub/middleware"
	"hobyhub/models"
	"hobyhub/services/discovery"
	"hobyhub/services/location"
	"hobyhub/utils"

	"github.com/gin-gonic/gin"
)

// DiscoveryHandler exposes the per-session discovery pipeline.
type DiscoveryHandler struct {
	Manager *discovery.Manager
}

func NewDiscoveryHandler(manager *discovery.Manager) *DiscoveryHandler {
	return &DiscoveryHandler{Manager: manager}
}

func (h *DiscoveryHandler) session(c *gin.Context) *discovery.Session {
	return h.Manager.Get(middleware.SessionID(c))
}

// feedResponse is the payload every feed endpoint returns.
type feedResponse struct {
	Activities []models.Activity      `json:"activities"`
	Pagination models.PaginationState `json:"pagination"`
}

// GetFeed handles GET /api/feed.
func (h *DiscoveryHandler) GetFeed(c *gin.Context) {
	sess := h.session(c)
	c.JSON(http.StatusOK, feedResponse{
		Activities: sess.Feed.Items(),
		Pagination: sess.Feed.State(),
	})
}

// RefreshFeed handles POST /api/feed/refresh: reset to page 1 and re-fetch
// with the current committed state.
func (h *DiscoveryHandler) RefreshFeed(c *gin.Context) {
	sess := h.session(c)
	sess.Feed.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, feedResponse{
		Activities: sess.Feed.Items(),
		Pagination: sess.Feed.State(),
	})
}

// LoadMore handles POST /api/feed/more: the client reports that the last
// rendered card became visible.
func (h *DiscoveryHandler) LoadMore(c *gin.Context) {
	sess := h.session(c)
	sess.Pager.OnSentinelVisible(c.Request.Context())
	c.JSON(http.StatusOK, feedResponse{
		Activities: sess.Feed.Items(),
		Pagination: sess.Feed.State(),
	})
}

// GetFilters handles GET /api/filters.
func (h *DiscoveryHandler) GetFilters(c *gin.Context) {
	sess := h.session(c)
	c.JSON(http.StatusOK, gin.H{
		"criteria": sess.Filters.Criteria(),
		"trigger":  sess.Filters.Trigger(),
		"sort":     sess.Sort.Criteria(),
	})
}

// filterEditRequest carries draft filter edits. Pointer fields distinguish
// "not edited" from zero values.
type filterEditRequest struct {
	PriceRange     *[2]int  `json:"priceRange"`
	Gender         *string  `json:"gender"`
	Age            *string  `json:"age"`
	Time           *string  `json:"time"`
	Location       *string  `json:"location"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	CategoryID     *string  `json:"categoryId"`
	SubCategoryID  *string  `json:"subCategoryId"`
	FiltersApplied *bool    `json:"areFiltersApplied"`
}

// UpdateFilters handles PUT /api/filters. Edits are drafts: no fetch happens
// until /api/filters/apply.
func (h *DiscoveryHandler) UpdateFilters(c *gin.Context) {
	var req filterEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter payload", err.Error())
		return
	}

	sess := h.session(c)
	filters := sess.Filters
	if req.PriceRange != nil {
		filters.SetPriceRange(req.PriceRange[0], req.PriceRange[1])
	}
	if req.Gender != nil {
		filters.SetGender(*req.Gender)
	}
	if req.Age != nil {
		filters.SetAge(*req.Age)
	}
	if req.Time != nil {
		filters.SetTime(*req.Time)
	}
	if req.Location != nil {
		filters.SetLocation(*req.Location)
	}
	if req.Latitude != nil && req.Longitude != nil {
		filters.SetCoordinates(*req.Latitude, *req.Longitude)
	}
	if req.CategoryID != nil || req.SubCategoryID != nil {
		category := filters.Criteria().CategoryID
		sub := filters.Criteria().SubCategoryID
		if req.CategoryID != nil {
			category = *req.CategoryID
		}
		if req.SubCategoryID != nil {
			sub = *req.SubCategoryID
		}
		filters.SetCategory(category, sub)
	}
	if req.FiltersApplied != nil {
		filters.SetFiltersApplied(*req.FiltersApplied)
	}

	c.JSON(http.StatusOK, gin.H{"criteria": filters.Criteria()})
}

// ApplyFilters handles POST /api/filters/apply: the explicit search action.
func (h *DiscoveryHandler) ApplyFilters(c *gin.Context) {
	sess := h.session(c)
	sess.Filters.SetFiltersApplied(true)
	sess.Filters.TriggerUpdate()
	c.JSON(http.StatusOK, feedResponse{
		Activities: sess.Feed.Items(),
		Pagination: sess.Feed.State(),
	})
}

// ClearFilters handles POST /api/filters/clear.
func (h *DiscoveryHandler) ClearFilters(c *gin.Context) {
	sess := h.session(c)
	sess.Filters.Clear()
	c.JSON(http.StatusOK, gin.H{
		"criteria":   sess.Filters.Criteria(),
		"activities": sess.Feed.Items(),
		"pagination": sess.Feed.State(),
	})
}

// SetSort handles PUT /api/sort. Sort edits commit immediately.
func (h *DiscoveryHandler) SetSort(c *gin.Context) {
	var req struct {
		Key        *models.SortKey `json:"key"`
		DistanceKm *int            `json:"distanceKm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sort payload", err.Error())
		return
	}

	sess := h.session(c)
	if req.Key != nil {
		if !models.ValidSortKey(*req.Key) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid sort key", string(*req.Key))
			return
		}
		sess.Sort.SetKey(*req.Key)
	}
	if req.DistanceKm != nil {
		sess.Sort.SetDistance(*req.DistanceKm)
	}
	c.JSON(http.StatusOK, gin.H{"sort": sess.Sort.Criteria()})
}

// SetMode handles PUT /api/mode: the online/offline toggle.
func (h *DiscoveryHandler) SetMode(c *gin.Context) {
	var req struct {
		Mode models.ActivityType `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid mode payload", err.Error())
		return
	}
	if req.Mode != models.ActivityOnline && req.Mode != models.ActivityOffline {
		utils.JSONError(c, http.StatusBadRequest, "Invalid mode", string(req.Mode))
		return
	}

	sess := h.session(c)
	sess.Sort.SetMode(req.Mode)
	c.JSON(http.StatusOK, gin.H{"sort": sess.Sort.Criteria()})
}

// DetectLocation handles POST /api/location/detect. The client supplies the
// coordinates its geolocation API produced, or nothing when permission was
// denied; either way the response carries a usable location name.
func (h *DiscoveryHandler) DetectLocation(c *gin.Context) {
	var req struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid location payload", err.Error())
		return
	}

	var coords *location.Coordinates
	if req.Latitude != nil && req.Longitude != nil {
		coords = &location.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	sess := h.session(c)
	resolved := sess.Location.Detect(c.Request.Context(), coords)

	// A successful detection commits to the filter state and re-fetches,
	// same as pressing search.
	sess.Filters.SetLocation(resolved.Name)
	sess.Filters.SetCoordinates(resolved.Coordinates.Latitude, resolved.Coordinates.Longitude)
	sess.Filters.TriggerUpdate()

	c.JSON(http.StatusOK, gin.H{"location": resolved})
}
