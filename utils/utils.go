package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// NormalizeEmail canonicalizes a user identity key. All enrollment,
// certificate and OTP lookups go through this so that casing and
// whitespace never split one user into two.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}
