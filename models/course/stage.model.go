package course

import "gorm.io/gorm"

// Stage is an ordered sub-part of a course. StageOrder is 0-based and
// dense: it is assigned from the current stage count on append and
// stages are never reordered or removed.
type Stage struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	StageOrder int    `json:"stage_order" gorm:"not null"`
	IsDeleted  bool   `gorm:"default:false"`
}
