package handlers

import (
	"errors"
	"log"
	"strconv"

	"slotb/internal/api/middleware"
	"slotb/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type BookingRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// Create adds a booking owned by the caller.
func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	claims := middleware.Caller(c)
	booking, err := h.bookingService.Create(
		claims.UserID, req.Title, req.Date, req.StartTime, req.EndTime, req.Description,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingBookingFields),
			errors.Is(err, services.ErrInvalidTimeRange):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			log.Printf("create booking failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(201, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// List returns the caller's bookings.
func (h *BookingHandler) List(c *gin.Context) {
	claims := middleware.Caller(c)
	bookings, err := h.bookingService.List(claims.UserID)
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(200, gin.H{"bookings": bookings})
}

// ListByDate returns every user's bookings for one calendar date.
func (h *BookingHandler) ListByDate(c *gin.Context) {
	bookings, err := h.bookingService.ListByDate(c.Param("date"))
	if err != nil {
		log.Printf("list bookings by date failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(200, gin.H{"bookings": bookings})
}

// Recent returns the caller's ten most recent bookings as a bare array.
func (h *BookingHandler) Recent(c *gin.Context) {
	claims := middleware.Caller(c)
	bookings, err := h.bookingService.Recent(claims.UserID)
	if err != nil {
		log.Printf("list recent bookings failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to fetch recent bookings"})
		return
	}

	c.JSON(200, bookings)
}

// Update rewrites one of the caller's bookings.
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid booking ID"})
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	claims := middleware.Caller(c)
	err = h.bookingService.Update(
		uint(id), claims.UserID, req.Title, req.Date, req.StartTime, req.EndTime, req.Description,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingBookingFields),
			errors.Is(err, services.ErrInvalidTimeRange):
			c.JSON(400, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(404, gin.H{"error": "Booking not found or unauthorized"})
		default:
			log.Printf("update booking failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to update booking"})
		}
		return
	}

	c.JSON(200, gin.H{"message": "Booking updated successfully"})
}

// Delete removes one of the caller's bookings.
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid booking ID"})
		return
	}

	claims := middleware.Caller(c)
	if err := h.bookingService.Delete(uint(id), claims.UserID); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(404, gin.H{"error": "Booking not found or unauthorized"})
		} else {
			log.Printf("delete booking failed: %v", err)
			c.JSON(500, gin.H{"error": "Failed to delete booking"})
		}
		return
	}

	c.JSON(200, gin.H{"message": "Booking deleted successfully"})
}
