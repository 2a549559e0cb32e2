package models

import (
	"time"
)

type Booking struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Date        string    `json:"date" gorm:"type:varchar(10);not null;index"` // yyyy-mm-dd
	StartTime   string    `json:"startTime" gorm:"type:varchar(5);not null"`   // HH:MM
	EndTime     string    `json:"endTime" gorm:"type:varchar(5);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DateBooking is a booking joined with its owner's username, as returned by
// the per-day calendar listing.
type DateBooking struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Username    string    `json:"username"`
}
