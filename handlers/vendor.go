// File: handlers/vendor.go
package handlers

import (
	"net/http"

	"hobyhub/middleware"
	"hobyhub/models"
	"hobyhub/services/vendor"
	"hobyhub/utils"

	"github.com/gin-gonic/gin"
)

// VendorHandler exposes the registration wizard and listing management.
type VendorHandler struct {
	Svc vendor.VendorService
}

func NewVendorHandler(svc vendor.VendorService) *VendorHandler {
	return &VendorHandler{Svc: svc}
}

func vendorToken(c *gin.Context) string {
	return c.GetString("authToken")
}

// GetWizard handles GET /api/vendors/register.
func (h *VendorHandler) GetWizard(c *gin.Context) {
	state, err := h.Svc.State(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load wizard state", err.Error())
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveStep handles POST /api/vendors/register/step.
func (h *VendorHandler) SaveStep(c *gin.Context) {
	var req struct {
		Step  string                    `json:"step" binding:"required"`
		Draft models.VendorRegistration `json:"draft"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.Svc.SaveStep(c.Request.Context(), middleware.SessionID(c), req.Step, req.Draft)
	if err != nil {
		// Validation failures block only this step's save.
		utils.JSONError(c, http.StatusUnprocessableEntity, "Step validation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, state)
}

// Submit handles POST /api/vendors/register/submit.
func (h *VendorHandler) Submit(c *gin.Context) {
	created, err := h.Svc.Submit(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CreateClass handles POST /api/vendors/classes.
func (h *VendorHandler) CreateClass(c *gin.Context) {
	var class models.ActivityClass
	if err := c.ShouldBindJSON(&class); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Svc.CreateClass(c.Request.Context(), vendorToken(c), class)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to create class", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClass handles PUT /api/vendors/classes/:id.
func (h *VendorHandler) UpdateClass(c *gin.Context) {
	var class models.ActivityClass
	if err := c.ShouldBindJSON(&class); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	class.ID = c.Param("id")
	updated, err := h.Svc.UpdateClass(c.Request.Context(), vendorToken(c), class)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to update class", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClass handles DELETE /api/vendors/classes/:id.
func (h *VendorHandler) DeleteClass(c *gin.Context) {
	if err := h.Svc.DeleteClass(c.Request.Context(), vendorToken(c), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to delete class", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// CreateCourse handles POST /api/vendors/courses.
func (h *VendorHandler) CreateCourse(c *gin.Context) {
	var course models.ActivityCourse
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Svc.CreateCourse(c.Request.Context(), vendorToken(c), course)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to create course", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCourse handles PUT /api/vendors/courses/:id.
func (h *VendorHandler) UpdateCourse(c *gin.Context) {
	var course models.ActivityCourse
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course.ID = c.Param("id")
	updated, err := h.Svc.UpdateCourse(c.Request.Context(), vendorToken(c), course)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to update course", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCourse handles DELETE /api/vendors/courses/:id.
func (h *VendorHandler) DeleteCourse(c *gin.Context) {
	if err := h.Svc.DeleteCourse(c.Request.Context(), vendorToken(c), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to delete course", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// UploadImageMeta handles POST /api/vendors/images.
func (h *VendorHandler) UploadImageMeta(c *gin.Context) {
	var meta models.ImageMeta
	if err := c.ShouldBindJSON(&meta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Svc.UploadImageMeta(c.Request.Context(), vendorToken(c), meta)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to register image", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}
