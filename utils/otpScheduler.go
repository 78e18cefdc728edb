package utils

import (
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeOTPScheduler starts the periodic cleanup of expired
// password-reset codes. purge is services.PasswordOTP.PurgeExpired,
// passed in to avoid an import cycle.
func InitializeOTPScheduler(purge func()) *cron.Cron {
	log.Println("[OTP-SCHEDULER] Initializing OTP cleanup scheduler...")

	c := cron.New()

	// Run every 10 minutes
	c.AddFunc("*/10 * * * *", func() {
		purge()
	})

	c.Start()
	log.Println("[OTP-SCHEDULER] OTP cleanup scheduler started - runs every 10 minutes")
	return c
}
