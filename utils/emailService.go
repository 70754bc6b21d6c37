package utils

import (
	"courierhub/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email via SendGrid when an API key is
// configured, falling back to plain SMTP otherwise. Delivery failures are
// returned to the caller but never fail the originating request.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("CourierHub", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)

	for _, addr := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", addr), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email: %d %s", resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CourierHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2C56; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2C56; line-height: 1.6; }
			.content h2 { color: #1A2C56; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #F2A93B; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CourierHub</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from CourierHub. Please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendApplicationStatusEmail notifies a candidate that their application
// moved to a new stage.
func SendApplicationStatusEmail(to, name, newStatus string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your courier application status has changed to:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Log in to your dashboard to see the details and any next steps.</p>
	`, name, newStatus)

	if err := SendEmail([]string{to}, "Your application status has changed", getEmailTemplate("Application Update", body)); err != nil {
		log.Printf("Failed to send status email to %s: %v", to, err)
	}
}

// SendDocumentReviewEmail notifies a candidate of a document verdict.
func SendDocumentReviewEmail(to, name, docLabel, verdict, note string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your document <strong>%s</strong> was reviewed: <strong>%s</strong>.</p>
	`, name, docLabel, verdict)
	if note != "" {
		body += fmt.Sprintf(`<div class="info-box">%s</div>`, note)
	}

	if err := SendEmail([]string{to}, "Document review result", getEmailTemplate("Document Review", body)); err != nil {
		log.Printf("Failed to send review email to %s: %v", to, err)
	}
}

// SendAssignmentReminderEmail nudges a candidate about a still-pending offer.
func SendAssignmentReminderEmail(to, name, title string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You have a pending job offer waiting for your response:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Please accept or reject it from your dashboard.</p>
	`, name, title)

	if err := SendEmail([]string{to}, "Reminder: pending job offer", getEmailTemplate("Pending Job Offer", body)); err != nil {
		log.Printf("Failed to send reminder email to %s: %v", to, err)
	}
}
