package utils

import (
	"fmt"
	"internhub/config"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. Skipped (with a log line)
// when no API key is configured, so local and test runs stay offline.
func SendEmail(to, subject, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("[EMAIL] Skipping email to %s (%s): SENDGRID_API_KEY not set", to, subject)
		return nil
	}

	from := mail.NewEmail("InternHub", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}

// HTML wrapper shared by all outgoing emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #4C6FFF; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4C6FFF; margin: 20px 0; }
			.code { font-size: 28px; font-weight: bold; letter-spacing: 6px; color: #1A1A40; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>INTERNHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 InternHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Signup verification code
func SendVerificationEmail(email, name, code string) {
	subject := "Verify your InternHub account"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>InternHub</strong>! Use the code below to verify your email address.</p>
		<div class="info-box" style="text-align: center;">
			<span class="code">%s</span>
		</div>
		<p>The code expires in 10 minutes.</p>
	`, name, code)

	go SendEmail(email, subject, getEmailTemplate("Verify Your Email", body))
}

// 2. Password reset link
func SendPasswordResetEmail(email, name, resetURL string) {
	subject := "Reset your InternHub password"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset your password. Click the button below to choose a new one.</p>
		<a href="%s" class="btn">Reset Password</a>
		<p>The link expires in 10 minutes. If you did not request this, you can safely ignore this email.</p>
	`, name, resetURL)

	go SendEmail(email, subject, getEmailTemplate("Password Reset", body))
}

// 3. Enrollment confirmation
func SendEnrollmentEmail(email, name, internshipTitle string, endDate time.Time) {
	subject := "Enrollment Confirmed: " + internshipTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Program ends:</strong> %s<br>
			Submit your GitHub and live links for each task from your dashboard.
		</div>
	`, name, internshipTitle, endDate.Format("January 2, 2006"))

	go SendEmail(email, subject, getEmailTemplate("Enrollment Successful", body))
}

// 4. Internship ending soon reminder
func SendEndDateReminderEmail(email, name, internshipTitle string, endDate time.Time) {
	subject := "Reminder: " + internshipTitle + " ends soon"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your internship <strong>%s</strong> ends on <strong>%s</strong>.</p>
		<p>Make sure all of your task submissions are in before then.</p>
	`, name, internshipTitle, endDate.Format("January 2, 2006"))

	go SendEmail(email, subject, getEmailTemplate("Internship Ending Soon", body))
}
