package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModels "learnhub/models/course"
	"learnhub/utils"
)

// CertificateNotifier is told about freshly issued certificates.
// Delivery is best-effort.
type CertificateNotifier interface {
	CertificateIssued(cert *courseModels.Certificate)
}

// CertificateService issues at most one certificate per (user, course)
// pair. Issuance is serialized per pair by a keyed mutex, with the
// unique DB index as the backstop for writers on other processes.
type CertificateService struct {
	db       *gorm.DB
	mailer   utils.Mailer
	notifier CertificateNotifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCertificateService(db *gorm.DB, mailer utils.Mailer, notifier CertificateNotifier) *CertificateService {
	return &CertificateService{
		db:       db,
		mailer:   mailer,
		notifier: notifier,
		locks:    make(map[string]*sync.Mutex),
	}
}

// HandleEnrollmentCompleted issues a certificate for the completed
// enrollment. Failures are logged, never propagated: the enrollment is
// the source of truth and issuance can be retried later.
func (s *CertificateService) HandleEnrollmentCompleted(event EnrollmentCompleted) {
	if _, err := s.Issue(event.UserEmail, event.CourseID, event.CourseTitle); err != nil {
		log.Printf("Failed to issue certificate for %s / course %d: %v", event.UserEmail, event.CourseID, err)
	}
}

// Issue returns the existing certificate for the pair if one exists,
// otherwise creates it. Calling Issue any number of times, sequentially
// or concurrently, leaves exactly one persisted certificate.
func (s *CertificateService) Issue(userEmail string, courseID uint, courseTitle string) (*courseModels.Certificate, error) {
	email := utils.NormalizeEmail(userEmail)

	lock := s.lockFor(fmt.Sprintf("%s:%d", email, courseID))
	lock.Lock()
	defer lock.Unlock()

	var existing courseModels.Certificate
	err := s.db.Where("user_email = ? AND course_id = ? AND is_deleted = ?", email, courseID, false).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cert := courseModels.Certificate{
		UserEmail:         email,
		CourseID:          courseID,
		CourseTitle:       courseTitle,
		CertificateNumber: uuid.NewString(),
		IssueDate:         time.Now(),
	}
	cert.CertificateURL = "/api/certificates/download/" + cert.CertificateNumber

	if err := s.db.Create(&cert).Error; err != nil {
		// A writer in another process may have won the unique index race.
		var winner courseModels.Certificate
		if ferr := s.db.Where("user_email = ? AND course_id = ? AND is_deleted = ?", email, courseID, false).First(&winner).Error; ferr == nil {
			return &winner, nil
		}
		return nil, err
	}

	s.afterIssue(&cert)
	return &cert, nil
}

// GetByUser returns all certificates of a user, newest first.
func (s *CertificateService) GetByUser(userEmail string) ([]courseModels.Certificate, error) {
	email := utils.NormalizeEmail(userEmail)

	var certificates []courseModels.Certificate
	if err := s.db.Where("user_email = ? AND is_deleted = ?", email, false).Order("issue_date desc").Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

// GetByUserAndCourse returns the certificate for the pair, or ErrNotFound.
func (s *CertificateService) GetByUserAndCourse(userEmail string, courseID uint) (*courseModels.Certificate, error) {
	email := utils.NormalizeEmail(userEmail)

	var cert courseModels.Certificate
	if err := s.db.Where("user_email = ? AND course_id = ? AND is_deleted = ?", email, courseID, false).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: certificate for user %s and course %d", ErrNotFound, email, courseID)
		}
		return nil, err
	}
	return &cert, nil
}

// GetByNumber resolves a certificate from its public number, as used in
// download URLs.
func (s *CertificateService) GetByNumber(certificateNumber string) (*courseModels.Certificate, error) {
	var cert courseModels.Certificate
	if err := s.db.Where("certificate_number = ? AND is_deleted = ?", certificateNumber, false).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: certificate %s", ErrNotFound, certificateNumber)
		}
		return nil, err
	}
	return &cert, nil
}

func (s *CertificateService) afterIssue(cert *courseModels.Certificate) {
	if s.mailer != nil {
		if err := utils.SendCertificateEmail(s.mailer, cert.UserEmail, cert.CourseTitle, cert.CertificateNumber); err != nil {
			log.Printf("Failed to send certificate email to %s: %v", cert.UserEmail, err)
		}
	}
	if s.notifier != nil {
		s.notifier.CertificateIssued(cert)
	}
}

func (s *CertificateService) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
