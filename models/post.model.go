package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Post struct {
	gorm.Model
	UserEmail   string                      `json:"user_email" gorm:"index;not null"`
	Description string                      `json:"description" gorm:"type:text"`
	MediaUrls   datatypes.JSONSlice[string] `json:"media_urls"`
	Hashtags    datatypes.JSONSlice[string] `json:"hashtags"`
	Likes       datatypes.JSONSlice[string] `json:"likes"` // emails of users who liked
	IsDeleted   bool                        `gorm:"default:false"`
}
