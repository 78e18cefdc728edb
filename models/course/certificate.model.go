package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an issued proof of course completion. Immutable once
// created; at most one row exists per (user_email, course_id) pair,
// enforced by the unique index.
type Certificate struct {
	gorm.Model
	UserEmail         string    `json:"user_email" gorm:"uniqueIndex:idx_certificate_user_course;not null"`
	CourseID          uint      `json:"course_id" gorm:"uniqueIndex:idx_certificate_user_course;not null"`
	CourseTitle       string    `json:"course_title"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	CertificateURL    string    `json:"certificate_url"`
	IssueDate         time.Time `json:"issue_date"`
	IsDeleted         bool      `gorm:"default:false"`
}
