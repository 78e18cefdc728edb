package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnhub/database"
	courseModels "learnhub/models/course"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, stageCount int) *courseModels.Course {
	t.Helper()
	crs := courseModels.Course{
		Title:        "Go Fundamentals",
		Description:  "From zero to production",
		Category:     "programming",
		CreatorEmail: "instructor@learnhub.local",
	}
	require.NoError(t, db.Create(&crs).Error)
	for i := 0; i < stageCount; i++ {
		stage := courseModels.Stage{
			CourseID:   crs.ID,
			Title:      fmt.Sprintf("Stage %d", i),
			Content:    "content",
			StageOrder: i,
		}
		require.NoError(t, db.Create(&stage).Error)
	}
	return &crs
}

func TestEnrollMissingCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)

	_, err := svc.Enroll("student@learnhub.local", 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnrollDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 2)

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	_, err = svc.Enroll("student@learnhub.local", crs.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// Email casing does not create a second enrollment
	_, err = svc.Enroll("  STUDENT@learnhub.local ", crs.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestEnrollDuplicateKeyBackstop(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 1)

	enrollment, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	// Hide the row from the pre-create lookup so Enroll falls through to
	// the insert and hits the unique index, like a racing second call.
	require.NoError(t, db.Model(&courseModels.Enrollment{}).Where("id = ?", enrollment.ID).Update("is_deleted", true).Error)

	_, err = svc.Enroll("student@learnhub.local", crs.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCompleteStageOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 3)

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	_, err = svc.CompleteStage("student@learnhub.local", crs.ID, -1)
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = svc.CompleteStage("student@learnhub.local", crs.ID, 3)
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestCompleteStageWithoutEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 2)

	_, err := svc.CompleteStage("student@learnhub.local", crs.ID, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteStageIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 3)

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		enrollment, err := svc.CompleteStage("student@learnhub.local", crs.ID, 1)
		require.NoError(t, err)
		assert.Len(t, enrollment.CompletedStages, 1)
	}
	assert.InDelta(t, 100.0/3.0, svc.ProgressPercentage("student@learnhub.local", crs.ID), 0.001)
}

func TestCompleteStagesInAnyOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 3)

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	for _, order := range []int{2, 0, 1} {
		_, err := svc.CompleteStage("student@learnhub.local", crs.ID, order)
		require.NoError(t, err)
	}

	enrollment, err := svc.GetEnrollment("student@learnhub.local", crs.ID)
	require.NoError(t, err)
	assert.True(t, enrollment.Completed)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestProgressPercentage(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 3)

	// Missing enrollment reports 0
	assert.Equal(t, 0.0, svc.ProgressPercentage("student@learnhub.local", crs.ID))

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, svc.ProgressPercentage("student@learnhub.local", crs.ID))

	// Progress only ever moves up
	previous := 0.0
	for _, order := range []int{0, 1, 2} {
		_, err := svc.CompleteStage("student@learnhub.local", crs.ID, order)
		require.NoError(t, err)
		current := svc.ProgressPercentage("student@learnhub.local", crs.ID)
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
	assert.Equal(t, 100.0, previous)
}

func TestProgressOnCourseWithNoStages(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	crs := seedCourse(t, db, 0)

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, svc.ProgressPercentage("student@learnhub.local", crs.ID))

	enrollment, err := svc.GetEnrollment("student@learnhub.local", crs.ID)
	require.NoError(t, err)
	assert.False(t, enrollment.Completed)
}

// recordingListener counts completion events for assertions.
type recordingListener struct {
	events []EnrollmentCompleted
}

func (l *recordingListener) HandleEnrollmentCompleted(event EnrollmentCompleted) {
	l.events = append(l.events, event)
}

func TestCompletionEventFiresOnce(t *testing.T) {
	db := newTestDB(t)
	listener := &recordingListener{}
	svc := NewEnrollmentService(db, listener)
	crs := seedCourse(t, db, 2)

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	_, err = svc.CompleteStage("student@learnhub.local", crs.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, listener.events)

	_, err = svc.CompleteStage("student@learnhub.local", crs.ID, 1)
	require.NoError(t, err)
	require.Len(t, listener.events, 1)
	assert.Equal(t, "student@learnhub.local", listener.events[0].UserEmail)
	assert.Equal(t, crs.ID, listener.events[0].CourseID)
	assert.Equal(t, crs.Title, listener.events[0].CourseTitle)

	// Re-completing after the fact does not fire again
	_, err = svc.CompleteStage("student@learnhub.local", crs.ID, 1)
	require.NoError(t, err)
	assert.Len(t, listener.events, 1)
}

func TestCompletionIssuesExactlyOneCertificate(t *testing.T) {
	db := newTestDB(t)
	certSvc := NewCertificateService(db, nil, nil)
	svc := NewEnrollmentService(db, certSvc)
	crs := seedCourse(t, db, 3)

	_, err := svc.Enroll("student@learnhub.local", crs.ID)
	require.NoError(t, err)

	for _, order := range []int{0, 1} {
		_, err := svc.CompleteStage("student@learnhub.local", crs.ID, order)
		require.NoError(t, err)
	}
	assert.InDelta(t, 66.666, svc.ProgressPercentage("student@learnhub.local", crs.ID), 0.01)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	_, err = svc.CompleteStage("student@learnhub.local", crs.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 100.0, svc.ProgressPercentage("student@learnhub.local", crs.ID))

	// Replaying the last stage must not mint a second certificate
	_, err = svc.CompleteStage("student@learnhub.local", crs.ID, 2)
	require.NoError(t, err)

	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	cert, err := certSvc.GetByUserAndCourse("student@learnhub.local", crs.ID)
	require.NoError(t, err)
	assert.Equal(t, crs.Title, cert.CourseTitle)
	assert.NotEmpty(t, cert.CertificateNumber)
}

func TestListByUserAndCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	first := seedCourse(t, db, 1)
	second := seedCourse(t, db, 1)

	_, err := svc.Enroll("a@learnhub.local", first.ID)
	require.NoError(t, err)
	_, err = svc.Enroll("a@learnhub.local", second.ID)
	require.NoError(t, err)
	_, err = svc.Enroll("b@learnhub.local", first.ID)
	require.NoError(t, err)

	byUser, err := svc.ListByUser("A@learnhub.local")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byCourse, err := svc.ListByCourse(first.ID)
	require.NoError(t, err)
	assert.Len(t, byCourse, 2)
}
