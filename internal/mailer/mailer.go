package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/handyhub/marketplace-api/internal/config"
)

// Mailer sends transactional mail over SMTP. Without SMTP configured it
// logs the message instead, which keeps the password-reset flow usable in
// development.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	m := &Mailer{from: cfg.MailFrom}

	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPass,
		)
	}

	return m
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		log.Printf("mailer disabled, would send to %s: %s", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

// SendPasswordReset mails the reset link carrying the plaintext token and
// falls back to logging the link when SMTP is off.
func (m *Mailer) SendPasswordReset(to, baseURL, token string) error {
	link := fmt.Sprintf("%sreset-password?token=%s", baseURL, token)

	if m.dialer == nil {
		log.Printf("password reset link for %s: %s", to, link)
		return nil
	}

	body := fmt.Sprintf(
		`<p>A password reset was requested for your account.</p>
<p><a href="%s">Reset your password</a></p>
<p>The link expires in one hour. If you did not request this, ignore this email.</p>`,
		link,
	)

	return m.Send(to, "Reset your password", body)
}
