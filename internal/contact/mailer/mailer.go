package mailer

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when SMTP credentials are absent.
var ErrNotConfigured = errors.New("email service not configured")

// Mail is one outbound message handed to the relay.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
	ReplyTo  string
}

// Mailer performs delivery of a single mail.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
