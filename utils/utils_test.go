package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@learnhub.local", NormalizeEmail("  User@LearnHub.LOCAL "))
	assert.Equal(t, "user@learnhub.local", NormalizeEmail("user@learnhub.local"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateOTP()
		require.Len(t, otp, 6)
		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
	}
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "/uploads/file.pdf", GetFileURL("file.pdf"))
	assert.Equal(t, "", GetFileURL(""))
}
