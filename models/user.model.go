package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string                      `json:"email" gorm:"unique;not null"`
	FirstName     string                      `json:"first_name" gorm:"default:''"`
	LastName      string                      `json:"last_name" gorm:"default:''"`
	Username      string                      `json:"username" gorm:"default:''"`
	Password      string                      `json:"-" gorm:"not null"`
	ProfileImage  string                      `json:"profile_image" gorm:"default:''"`
	FollowedUsers datatypes.JSONSlice[string] `json:"followed_users"`
	LastLogin     *time.Time                  `json:"last_login"`
	IsDeleted     bool                        `gorm:"default:false"`
}
