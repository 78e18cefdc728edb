package models

import "gorm.io/gorm"

type Message struct {
	gorm.Model
	GroupID     uint   `json:"group_id" gorm:"index;not null"`
	GroupName   string `json:"group_name"`
	SenderEmail string `json:"sender_email" gorm:"not null"`
	SenderName  string `json:"sender_name"`
	Content     string `json:"content" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	IsDeleted   bool   `gorm:"default:false"`
}
