package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string     `json:"username" gorm:"unique;not null" validate:"required"`
	Password  string     `json:"-" gorm:"not null"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role" gorm:"default:'operator'"` // admin, operator, viewer
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	LastLogin *time.Time `json:"last_login"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"unique"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

type ActivityLog struct {
	gorm.Model
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Action   string `json:"action"`
	Detail   string `json:"detail"`
}
