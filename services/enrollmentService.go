package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModels "learnhub/models/course"
	"learnhub/utils"
)

// EnrollmentService owns the enrollment lifecycle: enroll, record stage
// completions, compute progress and flag completion. On the first
// transition to completed it publishes an EnrollmentCompleted event to
// its listeners.
type EnrollmentService struct {
	db        *gorm.DB
	listeners []CompletionListener
}

func NewEnrollmentService(db *gorm.DB, listeners ...CompletionListener) *EnrollmentService {
	return &EnrollmentService{db: db, listeners: listeners}
}

// Enroll registers a user in a course. Fails with ErrNotFound if the
// course does not exist and ErrConflict if the user is already enrolled.
func (s *EnrollmentService) Enroll(userEmail string, courseID uint) (*courseModels.Enrollment, error) {
	email := utils.NormalizeEmail(userEmail)

	var crs courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return nil, err
	}

	var existing courseModels.Enrollment
	err := s.db.Where("user_email = ? AND course_id = ? AND is_deleted = ?", email, courseID, false).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: user %s is already enrolled in course %d", ErrConflict, email, courseID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := courseModels.Enrollment{
		UserEmail:       email,
		CourseID:        courseID,
		EnrolledAt:      time.Now(),
		CompletedStages: datatypes.JSONSlice[int]{},
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		// The unique index backstops two enrolls racing past the lookup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %s is already enrolled in course %d", ErrConflict, email, courseID)
		}
		return nil, err
	}
	return &enrollment, nil
}

// CompleteStage adds stageOrder to the enrollment's completed set.
// Re-completing a stage is a no-op, not an error. Orders outside
// [0, totalStages) are rejected with ErrBadInput. When every stage of
// the course is complete the enrollment is flagged completed and an
// EnrollmentCompleted event goes out; issuance failures downstream do
// not roll back the enrollment.
func (s *EnrollmentService) CompleteStage(userEmail string, courseID uint, stageOrder int) (*courseModels.Enrollment, error) {
	email := utils.NormalizeEmail(userEmail)

	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_email = ? AND course_id = ? AND is_deleted = ?", email, courseID, false).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: enrollment for user %s and course %d", ErrNotFound, email, courseID)
		}
		return nil, err
	}

	var crs courseModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %d", ErrNotFound, courseID)
		}
		return nil, err
	}

	totalStages, err := s.countStages(courseID)
	if err != nil {
		return nil, err
	}
	if stageOrder < 0 || stageOrder >= totalStages {
		return nil, fmt.Errorf("%w: stage order %d is outside [0, %d)", ErrBadInput, stageOrder, totalStages)
	}

	if !enrollment.HasStage(stageOrder) {
		enrollment.CompletedStages = append(enrollment.CompletedStages, stageOrder)
	}

	justCompleted := false
	if !enrollment.Completed && allStagesComplete(&enrollment, totalStages) {
		now := time.Now()
		enrollment.Completed = true
		enrollment.CompletedAt = &now
		justCompleted = true
	}

	if err := s.db.Save(&enrollment).Error; err != nil {
		return nil, err
	}

	if justCompleted {
		event := EnrollmentCompleted{
			UserEmail:   email,
			CourseID:    courseID,
			CourseTitle: crs.Title,
			CompletedAt: *enrollment.CompletedAt,
		}
		for _, l := range s.listeners {
			l.HandleEnrollmentCompleted(event)
		}
	}

	return &enrollment, nil
}

// ProgressPercentage returns completed/total stages as a value in
// [0, 100]. Courses with no stages, and missing enrollments or courses,
// report 0 rather than an error.
func (s *EnrollmentService) ProgressPercentage(userEmail string, courseID uint) float64 {
	email := utils.NormalizeEmail(userEmail)

	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_email = ? AND course_id = ? AND is_deleted = ?", email, courseID, false).First(&enrollment).Error; err != nil {
		return 0
	}

	totalStages, err := s.countStages(courseID)
	if err != nil || totalStages == 0 {
		return 0
	}

	return float64(len(enrollment.CompletedStages)) / float64(totalStages) * 100
}

// GetEnrollment returns the enrollment for the pair, or ErrNotFound.
func (s *EnrollmentService) GetEnrollment(userEmail string, courseID uint) (*courseModels.Enrollment, error) {
	email := utils.NormalizeEmail(userEmail)

	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_email = ? AND course_id = ? AND is_deleted = ?", email, courseID, false).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: enrollment for user %s and course %d", ErrNotFound, email, courseID)
		}
		return nil, err
	}
	return &enrollment, nil
}

// ListByUser returns all enrollments of a user, most recent first.
func (s *EnrollmentService) ListByUser(userEmail string) ([]courseModels.Enrollment, error) {
	email := utils.NormalizeEmail(userEmail)

	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_email = ? AND is_deleted = ?", email, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListByCourse returns all enrollments in a course.
func (s *EnrollmentService) ListByCourse(courseID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *EnrollmentService) countStages(courseID uint) (int, error) {
	var total int64
	if err := s.db.Model(&courseModels.Stage{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

// allStagesComplete checks membership of every order in {0..total-1},
// not mere set cardinality, so stray values can never fake completion.
func allStagesComplete(e *courseModels.Enrollment, totalStages int) bool {
	if totalStages == 0 {
		return false
	}
	for order := 0; order < totalStages; order++ {
		if !e.HasStage(order) {
			return false
		}
	}
	return true
}
