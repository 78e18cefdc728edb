package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"learnhub/models"
	"learnhub/utils"
)

// OTPService backs the forgot-password flow with an expiring,
// DB-persisted code store. Codes expire after the configured TTL and
// are purged by the cron job, so no unbounded in-process map is kept.
type OTPService struct {
	db     *gorm.DB
	mailer utils.Mailer
	ttl    time.Duration
}

func NewOTPService(db *gorm.DB, mailer utils.Mailer, ttl time.Duration) *OTPService {
	return &OTPService{db: db, mailer: mailer, ttl: ttl}
}

// Generate invalidates any outstanding code for the email, stores a
// fresh one and mails it to the user.
func (s *OTPService) Generate(userEmail string) (string, error) {
	email := utils.NormalizeEmail(userEmail)

	if err := s.db.Model(&models.OTP{}).Where("email = ? AND used = ?", email, false).Update("used", true).Error; err != nil {
		return "", err
	}

	code := utils.GenerateOTP()
	otp := models.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&otp).Error; err != nil {
		return "", err
	}

	if s.mailer != nil {
		if err := utils.SendOTPEmail(s.mailer, code, email); err != nil {
			return "", err
		}
	}
	return code, nil
}

// Verify reports whether code is the current, unexpired, unused code
// for the email.
func (s *OTPService) Verify(userEmail, code string) bool {
	email := utils.NormalizeEmail(userEmail)

	var otp models.OTP
	err := s.db.Where("email = ? AND code = ? AND used = ? AND expires_at > ?", email, code, false, time.Now()).First(&otp).Error
	return err == nil
}

// Consume verifies the code and marks it used so it cannot be replayed.
func (s *OTPService) Consume(userEmail, code string) bool {
	email := utils.NormalizeEmail(userEmail)

	var otp models.OTP
	err := s.db.Where("email = ? AND code = ? AND used = ? AND expires_at > ?", email, code, false, time.Now()).First(&otp).Error
	if err != nil {
		return false
	}

	otp.Used = true
	if err := s.db.Save(&otp).Error; err != nil {
		log.Printf("Failed to mark OTP used for %s: %v", email, err)
		return false
	}
	return true
}

// PurgeExpired deletes expired and used codes. Run from cron.
func (s *OTPService) PurgeExpired() {
	result := s.db.Unscoped().Where("expires_at < ? OR used = ?", time.Now(), true).Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("Failed to purge expired OTPs: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired OTPs", result.RowsAffected)
	}
}
