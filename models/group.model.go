package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Group struct {
	gorm.Model
	Name            string                      `json:"name" gorm:"not null"`
	Description     string                      `json:"description"`
	CreatedBy       string                      `json:"created_by" gorm:"index;not null"` // creator email
	MemberEmails    datatypes.JSONSlice[string] `json:"member_emails"`
	PendingRequests datatypes.JSONSlice[string] `json:"pending_requests"`
	IsPrivate       bool                        `json:"is_private" gorm:"default:false"`
	IsDeleted       bool                        `gorm:"default:false"`
}
