package handlers

import (
	"errors"
	"log"
	"strconv"

	"slotb/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type AdminUpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	IDNumber  *string `json:"idNumber"`
	Role      *string `json:"role"`
}

// GetUsers returns all registered users.
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		log.Printf("list users failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(200, gin.H{"users": users})
}

// UpdateUser edits a user's name, ID number or role.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.adminService.UpdateUser(uint(id), services.AdminUserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IDNumber:  req.IDNumber,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidIDNumber):
			c.JSON(400, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(404, gin.H{"error": "User not found"})
		default:
			log.Printf("admin update user failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to update user"})
		}
		return
	}

	c.JSON(200, gin.H{"user": user})
}
