package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/aarikaaura/storefront/internal/contact/domain"
	"github.com/aarikaaura/storefront/internal/contact/mailer"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// Archive stores submitted messages. A nil archive disables archival.
type Archive interface {
	SaveMessage(ctx context.Context, msg domain.Message) error
}

// Relay validates contact submissions and dispatches two mails per
// submission: the business notification first, then the confirmation to
// the submitter. Overall success requires both.
type Relay struct {
	mailer     mailer.Mailer
	archive    Archive
	businessTo string
}

func NewRelay(m mailer.Mailer, archive Archive, businessTo string) *Relay {
	return &Relay{
		mailer:     m,
		archive:    archive,
		businessTo: businessTo,
	}
}

// Submit validates and dispatches a contact message. Validation
// failures are returned before any relay call is attempted; relay
// failures come back as DispatchError with a categorized reason.
func (r *Relay) Submit(ctx context.Context, msg domain.Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if r.businessTo == "" {
		return &domain.DispatchError{Reason: domain.ReasonNotConfigured}
	}

	if r.archive != nil {
		if err := r.archive.SaveMessage(ctx, msg); err != nil {
			// Archival is best-effort; the relay still runs.
			logger.Error(ctx).Err(err).Msg("Failed to archive contact message")
		}
	}

	business := mailer.Mail{
		To:       r.businessTo,
		Subject:  "New Contact Form: " + msg.Subject,
		HTMLBody: BuildBusinessNotificationBody(msg),
		ReplyTo:  msg.Email,
	}
	if err := r.mailer.Send(ctx, business); err != nil {
		return classify(err)
	}

	confirmation := mailer.Mail{
		To:       msg.Email,
		Subject:  "Thank you for contacting Aarika Aura!",
		HTMLBody: BuildConfirmationBody(msg),
	}
	if err := r.mailer.Send(ctx, confirmation); err != nil {
		return classify(err)
	}

	logger.Info(ctx).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Msg("Contact message relayed")
	return nil
}

func classify(err error) *domain.DispatchError {
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		return &domain.DispatchError{Reason: domain.ReasonNotConfigured, Err: err}
	case strings.Contains(err.Error(), "connection refused"):
		return &domain.DispatchError{Reason: domain.ReasonConnectionRefused, Err: err}
	case strings.Contains(err.Error(), "535") || strings.Contains(strings.ToLower(err.Error()), "auth"):
		return &domain.DispatchError{Reason: domain.ReasonAuthFailed, Err: err}
	default:
		return &domain.DispatchError{Reason: domain.ReasonUnknown, Err: err}
	}
}
