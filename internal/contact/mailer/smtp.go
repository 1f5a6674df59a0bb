package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer sends mail over SMTP. When Username is set, PLAIN auth is
// used; otherwise delivery is attempted unauthenticated (local relay).
type SMTPMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewSMTPMailer(host, port, from, username, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		from:     from,
		username: username,
		password: password,
	}
}

// Configured reports whether the mailer has enough settings to attempt
// delivery.
func (m *SMTPMailer) Configured() bool {
	return m.host != "" && m.from != ""
}

func (m *SMTPMailer) Send(_ context.Context, mail Mail) error {
	if !m.Configured() {
		return ErrNotConfigured
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.from, mail.To, mail.Subject)
	if mail.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", mail.ReplyTo)
	}
	headers += "MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n"

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	return smtp.SendMail(addr, auth, m.from, []string{mail.To}, []byte(headers+mail.HTMLBody))
}
