package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	PostID      uint   `json:"post_id" gorm:"index;not null"`
	UserEmail   string `json:"user_email" gorm:"index;not null"`
	CommentText string `json:"comment_text" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}
