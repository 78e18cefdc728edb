package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/models"
)

func TestOTPGenerateAndVerify(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, nil, 5*time.Minute)

	code, err := svc.Generate("student@learnhub.local")
	require.NoError(t, err)
	require.Len(t, code, 6)

	assert.True(t, svc.Verify("student@learnhub.local", code))
	assert.True(t, svc.Verify("STUDENT@learnhub.local", code))
	assert.False(t, svc.Verify("student@learnhub.local", "000000"))
	assert.False(t, svc.Verify("other@learnhub.local", code))
}

func TestOTPConsumeIsOneShot(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, nil, 5*time.Minute)

	code, err := svc.Generate("student@learnhub.local")
	require.NoError(t, err)

	assert.True(t, svc.Consume("student@learnhub.local", code))
	assert.False(t, svc.Consume("student@learnhub.local", code))
	assert.False(t, svc.Verify("student@learnhub.local", code))
}

func TestOTPRegenerateInvalidatesPrevious(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, nil, 5*time.Minute)

	first, err := svc.Generate("student@learnhub.local")
	require.NoError(t, err)
	second, err := svc.Generate("student@learnhub.local")
	require.NoError(t, err)

	if first != second {
		assert.False(t, svc.Verify("student@learnhub.local", first))
	}
	assert.True(t, svc.Verify("student@learnhub.local", second))
}

func TestOTPExpiry(t *testing.T) {
	db := newTestDB(t)
	svc := NewOTPService(db, nil, -time.Minute) // already expired on creation

	code, err := svc.Generate("student@learnhub.local")
	require.NoError(t, err)

	assert.False(t, svc.Verify("student@learnhub.local", code))
	assert.False(t, svc.Consume("student@learnhub.local", code))
}

func TestOTPPurgeExpired(t *testing.T) {
	db := newTestDB(t)
	expired := NewOTPService(db, nil, -time.Minute)
	active := NewOTPService(db, nil, 5*time.Minute)

	_, err := expired.Generate("old@learnhub.local")
	require.NoError(t, err)
	code, err := active.Generate("fresh@learnhub.local")
	require.NoError(t, err)

	active.PurgeExpired()

	var count int64
	require.NoError(t, db.Model(&models.OTP{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.True(t, active.Verify("fresh@learnhub.local", code))
}
