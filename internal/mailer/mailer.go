package mailer

import (
	"fmt"

	"club-portal-backend/internal/config"
	"club-portal-backend/internal/database/models"

	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

// Sender is the notification channel used for passcode, newsletter and
// contact emails
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender delivers mail through a plain SMTP relay
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSender creates a sender from the application config
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Send delivers a single HTML email
func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}

// PasscodeBody renders the verification email for a freshly issued passcode
func PasscodeBody(code string) string {
	minutes := int(models.PasscodeTTL.Minutes())
	return fmt.Sprintf(
		`<p>Hello,</p><p>Your verification code is: <b style="font-size:18px;">%s</b>.</p><p>The code is valid for %d minutes. Do not share it with anyone.</p>`,
		code, minutes,
	)
}
