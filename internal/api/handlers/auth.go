package handlers

import (
	"errors"
	"log"
	"strings"

	"slotb/internal/models"
	"slotb/internal/services"
	"slotb/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	IDNumber  string `json:"idNumber"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// Register creates a new account and logs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Username, email, password, first name, and last name are required"})
		return
	}

	user, token, err := h.authService.Register(
		req.Username, req.Email, req.Password,
		req.FirstName, req.LastName, req.IDNumber,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidIDNumber),
			errors.Is(err, store.ErrUsernameTaken),
			errors.Is(err, store.ErrEmailTaken):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			log.Printf("register failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(201, AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    user,
	})
}

// Login authenticates by username or email and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		identifier = req.Email
	}
	identifier = strings.TrimSpace(identifier)

	if identifier == "" || req.Password == "" {
		c.JSON(400, gin.H{"error": "Username or email and password are required"})
		return
	}

	user, err := h.authService.Authenticate(identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
		} else {
			log.Printf("login failed: %v", err)
			c.JSON(500, gin.H{"error": "Database error"})
		}
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		log.Printf("token issue failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}

	user.Sanitize()
	c.JSON(200, AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}
