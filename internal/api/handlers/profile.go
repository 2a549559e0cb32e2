package handlers

import (
	"errors"
	"log"

	"slotb/internal/api/middleware"
	"slotb/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	userService *services.UserService
}

func NewProfileHandler(userService *services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IDNumber  string `json:"idNumber"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type AvatarRequest struct {
	Image string `json:"image" binding:"required"`
}

// Get returns the caller's profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	claims := middleware.Caller(c)
	user, err := h.userService.GetProfile(claims.UserID)
	if err != nil {
		log.Printf("load profile failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(200, gin.H{"user": user})
}

// Update edits the caller's name and ID number.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	claims := middleware.Caller(c)
	user, err := h.userService.UpdateProfile(claims.UserID, req.FirstName, req.LastName, req.IDNumber)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingName),
			errors.Is(err, services.ErrInvalidIDNumber):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			log.Printf("update profile failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	c.JSON(200, gin.H{"user": user})
}

// ChangePassword replaces the caller's password after checking the current
// one.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Current and new passwords are required"})
		return
	}

	claims := middleware.Caller(c)
	err := h.userService.ChangePassword(claims.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			c.JSON(400, gin.H{"error": err.Error()})
		} else {
			log.Printf("change password failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to update password"})
		}
		return
	}

	c.JSON(200, gin.H{"message": "Password updated successfully"})
}

// UploadAvatar stores a new profile picture from a base64 payload.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	var req AvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Image payload is required"})
		return
	}

	claims := middleware.Caller(c)
	user, err := h.userService.SaveAvatar(claims.UserID, req.Image)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImage) {
			c.JSON(400, gin.H{"error": err.Error()})
		} else {
			log.Printf("avatar upload failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to update avatar"})
		}
		return
	}

	c.JSON(200, gin.H{"user": user})
}
