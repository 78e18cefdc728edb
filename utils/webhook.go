package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"learnhub/config"
	courseModels "learnhub/models/course"
)

// WebhookNotifier POSTs issued certificates to an external endpoint,
// e.g. a PDF rendering or verification service. Delivery is fire and
// forget; the endpoint is optional.
type WebhookNotifier struct {
	client *resty.Client
}

func NewWebhookNotifier() *WebhookNotifier {
	return &WebhookNotifier{
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

func (n *WebhookNotifier) CertificateIssued(cert *courseModels.Certificate) {
	url := config.AppConfig.CertificateWebhookURL
	if url == "" {
		return
	}

	go func() {
		resp, err := n.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"user_email":         cert.UserEmail,
				"course_id":          cert.CourseID,
				"course_title":       cert.CourseTitle,
				"certificate_number": cert.CertificateNumber,
				"certificate_url":    cert.CertificateURL,
				"issue_date":         cert.IssueDate,
			}).
			Post(url)
		if err != nil {
			log.Printf("Error calling certificate webhook: %v", err)
			return
		}
		if resp.IsError() {
			log.Printf("Certificate webhook failed with status %d: %s", resp.StatusCode(), resp.String())
		}
	}()
}
