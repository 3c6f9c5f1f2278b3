// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"
	"github.com/sirupsen/logrus"
)

// EmailService sends transactional mail through Postmark. When no API token
// is configured the service is disabled and sends become no-ops, so local
// development does not need a mail account.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		logrus.Warn("POSTMARK_API_TOKEN not set, email notifications disabled")
		return &EmailService{}
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		logrus.WithField("to", toEmail).Debug("Email disabled, skipping send")
		return nil
	}

	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOfferDecisionEmail tells a buyer their offer was accepted or rejected.
func (es *EmailService) SendOfferDecisionEmail(toEmail, propertyTitle, status string, amount float64) error {
	subject := fmt.Sprintf("Your offer was %s - Bashabari", status)
	htmlContent := fmt.Sprintf(
		"<strong>Dear Buyer,</strong><br><br>Your offer of <strong>$%.2f</strong> for <strong>%s</strong> has been <strong>%s</strong> by the agent.<br><br>Thank you for using Bashabari!",
		amount,
		propertyTitle,
		status,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
