package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment tracks a user's registration and progress in a course.
// UserEmail is the canonical lowercased email. At most one row exists
// per (user_email, course_id) pair.
type Enrollment struct {
	gorm.Model
	UserEmail       string                   `json:"user_email" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID        uint                     `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	EnrolledAt      time.Time                `json:"enrolled_at"`
	CompletedStages datatypes.JSONSlice[int] `json:"completed_stages"`
	Completed       bool                     `json:"completed" gorm:"default:false"`
	CompletedAt     *time.Time               `json:"completed_at"`
	IsDeleted       bool                     `gorm:"default:false"`
}

// HasStage reports whether stageOrder is already in the completed set.
func (e *Enrollment) HasStage(stageOrder int) bool {
	for _, s := range e.CompletedStages {
		if s == stageOrder {
			return true
		}
	}
	return false
}
