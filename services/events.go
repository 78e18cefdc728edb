package services

import "time"

// EnrollmentCompleted is published exactly once per enrollment, when the
// last stage of its course is marked complete. Certificate issuance
// consumes it; listeners must be idempotent because completion signals
// can race in from concurrent requests.
type EnrollmentCompleted struct {
	UserEmail   string
	CourseID    uint
	CourseTitle string
	CompletedAt time.Time
}

// CompletionListener receives EnrollmentCompleted events. Listener
// failures are the listener's problem: the enrollment mutation that
// triggered the event is already persisted and is never rolled back.
type CompletionListener interface {
	HandleEnrollmentCompleted(event EnrollmentCompleted)
}
