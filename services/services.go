package services

import (
	"time"

	"gorm.io/gorm"

	"learnhub/utils"
)

// Global service instances, wired once at startup.
var (
	Enrollment  *EnrollmentService
	Certificate *CertificateService
	PasswordOTP *OTPService

	// Mail is the mailer the services were wired with; controllers
	// sending their own mail reuse it instead of building a new one.
	Mail utils.Mailer
)

const otpTTL = 5 * time.Minute

// Setup wires the service layer against the connected database.
func Setup(db *gorm.DB, mailer utils.Mailer) {
	Mail = mailer
	Certificate = NewCertificateService(db, mailer, utils.NewWebhookNotifier())
	Enrollment = NewEnrollmentService(db, Certificate)
	PasswordOTP = NewOTPService(db, mailer, otpTTL)
}
