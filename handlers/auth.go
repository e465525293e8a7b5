// File: handlers/auth.go
package handlers

import (
	"net/http"

	"hobyhub/middleware"
	"hobyhub/models"
	"hobyhub/services/auth"
	"hobyhub/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler drives the OTP login flow.
type AuthHandler struct {
	Svc auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// RequestOTP handles POST /api/auth/otp.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req struct {
		PhoneNumber    string `json:"phoneNumber" binding:"required"`
		RecaptchaToken string `json:"recaptchaToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID, err := h.Svc.RequestOTP(c.Request.Context(), req.PhoneNumber, req.RecaptchaToken)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to send OTP", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"requestId": requestID})
}

// VerifyOTP handles POST /api/auth/verify.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		RequestID string `json:"requestId" binding:"required"`
		OTP       string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.SessionID(c)
	result, err := h.Svc.VerifyOTP(c.Request.Context(), sessionID, req.RequestID, req.OTP)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SignOut handles POST /api/auth/signout.
func (h *AuthHandler) SignOut(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if err := h.Svc.SignOut(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to sign out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetProfile handles GET /api/profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	profile, err := h.Svc.Profile(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.SessionID(c)
	updated, err := h.Svc.UpdateProfile(c.Request.Context(), sessionID, profile)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
