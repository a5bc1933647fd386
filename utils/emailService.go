package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Sem485/eduforge-lms/config"
	"github.com/Sem485/eduforge-lms/models"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: EduForge <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendCoursePublishedEmail notifies the author when their course goes live.
// Authors without an email address on file are skipped.
func SendCoursePublishedEmail(author *models.User, course *models.Course) error {
	if author.Email == "" {
		return fmt.Errorf("user %s has no email address", author.Username)
	}

	body := fmt.Sprintf(`
	<html><body style="font-family: sans-serif; color: #1e293b;">
		<h2>Your course is published</h2>
		<p>Hello %s,</p>
		<p>The course <strong>%s</strong> is now visible to learners.</p>
	</body></html>`, author.FullName, course.Title)

	return SendEmail([]string{author.Email}, "Course published: "+course.Title, body)
}
