package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP is a one-time password issued for the forgot-password flow.
// Rows expire at ExpiresAt and are purged by the cron cleanup job.
type OTP struct {
	gorm.Model
	Email     string    `json:"email" gorm:"index;not null"`
	Code      string    `json:"-" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	Used      bool      `json:"used" gorm:"default:false"`
}
