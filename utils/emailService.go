package utils

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"learnhub/config"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// NewMailer returns the SendGrid mailer when an API key is configured,
// otherwise a console mailer that only logs.
func NewMailer() Mailer {
	if config.AppConfig.SendGridKey != "" {
		return &SendGridMailer{}
	}
	return &ConsoleMailer{}
}

// SendGridMailer delivers mail through the SendGrid v3 API.
type SendGridMailer struct{}

func (m *SendGridMailer) Send(to, subject, htmlBody string) error {
	from := sgmail.NewEmail(config.AppConfig.EmailName, config.AppConfig.EmailSender)
	message := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", to), "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// ConsoleMailer logs instead of sending. Used in development and tests.
type ConsoleMailer struct{}

func (m *ConsoleMailer) Send(to, subject, htmlBody string) error {
	log.Printf("--- Email ---\nTo: %s\nSubject: %s\n", to, subject)
	return nil
}

// SendOTPEmail mails a password-reset code to the user.
func SendOTPEmail(mailer Mailer, otp, email string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">LearnHub Password Reset</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Your One Time Password (OTP) is:</p>
					<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
					<p style="font-size: 14px; color: #999999; text-align: center;">It is valid for 5 minutes. Do not share this OTP with anyone.</p>
				</div>
			</body>
		</html>
	`, otp)

	return mailer.Send(email, "Your LearnHub Password Reset Code", body)
}

// SendEnrollmentEmail confirms a new enrollment to the user.
func SendEnrollmentEmail(mailer Mailer, email, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Complete all stages to earn your certificate.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">LearnHub Team</p>
				</div>
			</body>
		</html>
	`, courseName)

	return mailer.Send(email, "Course Enrollment Confirmation - LearnHub", body)
}

// SendCertificateEmail notifies the user that a certificate was issued.
func SendCertificateEmail(mailer Mailer, email, courseName, certificateNumber string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Certificate of Completion</h2>
					<p style="font-size: 16px; color: #555555;">Congratulations on completing the course:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate Number:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
					</div>
					<p style="font-size: 14px; color: #666666;">You can use this certificate number for verification purposes.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">LearnHub Team</p>
				</div>
			</body>
		</html>
	`, courseName, certificateNumber)

	return mailer.Send(email, "Course Completion Certificate - LearnHub", body)
}
