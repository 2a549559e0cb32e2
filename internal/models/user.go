package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"type:varchar(255);not null"`
	Role           string    `json:"role" gorm:"type:varchar(50);default:'user'"` // admin, user
	FirstName      string    `json:"firstName" gorm:"type:varchar(255)"`
	LastName       string    `json:"lastName" gorm:"type:varchar(255)"`
	IDNumber       string    `json:"idNumber" gorm:"type:varchar(10)"`
	ProfilePicture string    `json:"profilePicture" gorm:"type:varchar(255)"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Sanitize clears credential fields before the user is written to a response.
func (u *User) Sanitize() {
	u.PasswordHash = ""
}
