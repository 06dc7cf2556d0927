package service

import (
	"fmt"

	"github.com/Suneetha610/student/config"
	"github.com/Suneetha610/student/logger"

	"gopkg.in/gomail.v2"
)

// MailService sends transactional mail through the configured SMTP
// collaborator. Send failures are recoverable: callers log them and carry
// on rather than failing the request.
type MailService struct {
	mail config.MailSettings
}

func NewMailService(settings *config.Settings) *MailService {
	return &MailService{mail: settings.Mail}
}

// SendPasswordReset mails the reset link. When no SMTP host is configured
// the link is logged instead, which keeps local setups usable.
func (m *MailService) SendPasswordReset(to string, name string, link string) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf(`<h1>Password Reset Request</h1>
<p>Hello %s,</p>
<p>You requested a password reset for the student feedback portal. Click the link below to set a new password:</p>
<p><a href="%s">Reset Password</a></p>
<p>If you did not request this, please ignore this email.</p>`, name, link)

	if m.mail.Host == "" {
		logger.Infof("mail disabled, reset link for %s: %s", to, link)
		return nil
	}
	return m.send(to, subject, body)
}

func (m *MailService) send(to string, subject string, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.mail.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.mail.Host, m.mail.Port, m.mail.Username, m.mail.Password)
	if err := d.DialAndSend(msg); err != nil {
		logger.Warningf("could not send email to %s: %v", to, err)
		return err
	}
	return nil
}
