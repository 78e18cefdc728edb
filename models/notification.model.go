package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	RecipientEmail string `json:"recipient_email" gorm:"index;not null"`
	SenderEmail    string `json:"sender_email" gorm:"not null"`
	PostID         uint   `json:"post_id" gorm:"index"`
	Type           string `json:"type"` // "like" or "comment"
	Message        string `json:"message"`
	IsRead         bool   `json:"is_read" gorm:"default:false"`
	IsDeleted      bool   `gorm:"default:false"`
}
