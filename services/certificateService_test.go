package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "learnhub/models/course"
)

func TestIssueIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db, nil, nil)

	first, err := svc.Issue("student@learnhub.local", 1, "Go Fundamentals")
	require.NoError(t, err)

	second, err := svc.Issue("student@learnhub.local", 1, "Go Fundamentals")
	require.NoError(t, err)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	// Different casing resolves to the same certificate
	third, err := svc.Issue("STUDENT@learnhub.local", 1, "Go Fundamentals")
	require.NoError(t, err)
	assert.Equal(t, first.CertificateNumber, third.CertificateNumber)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssueConcurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Issue("student@learnhub.local", 7, "Concurrent Course")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssuePerPairIndependence(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db, nil, nil)

	_, err := svc.Issue("a@learnhub.local", 1, "Course One")
	require.NoError(t, err)
	_, err = svc.Issue("a@learnhub.local", 2, "Course Two")
	require.NoError(t, err)
	_, err = svc.Issue("b@learnhub.local", 1, "Course One")
	require.NoError(t, err)

	certs, err := svc.GetByUser("a@learnhub.local")
	require.NoError(t, err)
	assert.Len(t, certs, 2)

	certs, err = svc.GetByUser("b@learnhub.local")
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func TestGetByNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db, nil, nil)

	cert, err := svc.Issue("student@learnhub.local", 3, "Lookup Course")
	require.NoError(t, err)

	found, err := svc.GetByNumber(cert.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, found.ID)
	assert.Contains(t, found.CertificateURL, cert.CertificateNumber)

	_, err = svc.GetByNumber("no-such-number")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByUserAndCourseMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificateService(db, nil, nil)

	_, err := svc.GetByUserAndCourse("student@learnhub.local", 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
