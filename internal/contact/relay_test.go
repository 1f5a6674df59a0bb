package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarikaaura/storefront/internal/contact/domain"
	"github.com/aarikaaura/storefront/internal/contact/mailer"
)

type fakeMailer struct {
	sent []mailer.Mail
	// failAt fails the nth send (1-based); 0 never fails
	failAt int
	err    error
}

func (f *fakeMailer) Send(_ context.Context, mail mailer.Mail) error {
	if f.failAt > 0 && len(f.sent)+1 == f.failAt {
		return f.err
	}
	f.sent = append(f.sent, mail)
	return nil
}

type fakeArchive struct {
	saved []domain.Message
	err   error
}

func (f *fakeArchive) SaveMessage(_ context.Context, msg domain.Message) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, msg)
	return nil
}

func validMessage() domain.Message {
	return domain.Message{
		Name:    "Priya Sharma",
		Email:   "priya@example.com",
		Subject: "Sizing question",
		Body:    "Does the palazzo set run true to size?",
	}
}

func TestSubmitSendsBusinessMailThenConfirmation(t *testing.T) {
	fm := &fakeMailer{}
	relay := NewRelay(fm, nil, "orders@aarikaaura.com")

	err := relay.Submit(context.Background(), validMessage())
	require.NoError(t, err)

	require.Len(t, fm.sent, 2)
	assert.Equal(t, "orders@aarikaaura.com", fm.sent[0].To)
	assert.Equal(t, "priya@example.com", fm.sent[0].ReplyTo)
	assert.Contains(t, fm.sent[0].Subject, "Sizing question")

	assert.Equal(t, "priya@example.com", fm.sent[1].To)
	assert.Empty(t, fm.sent[1].ReplyTo)
}

func TestSubmitValidationStopsBeforeAnySend(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*domain.Message)
		field string
	}{
		{"missing name", func(m *domain.Message) { m.Name = "" }, "name"},
		{"missing email", func(m *domain.Message) { m.Email = "" }, "email"},
		{"missing subject", func(m *domain.Message) { m.Subject = "  " }, "subject"},
		{"missing body", func(m *domain.Message) { m.Body = "" }, "message"},
		{"bad email no at", func(m *domain.Message) { m.Email = "priya.example.com" }, "email"},
		{"bad email no domain dot", func(m *domain.Message) { m.Email = "priya@example" }, "email"},
		{"bad email with space", func(m *domain.Message) { m.Email = "pri ya@example.com" }, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fm := &fakeMailer{}
			relay := NewRelay(fm, nil, "orders@aarikaaura.com")

			msg := validMessage()
			tc.mut(&msg)

			err := relay.Submit(context.Background(), msg)

			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)
			assert.Empty(t, fm.sent)
		})
	}
}

func TestSubmitWithoutBusinessAddress(t *testing.T) {
	fm := &fakeMailer{}
	relay := NewRelay(fm, nil, "")

	err := relay.Submit(context.Background(), validMessage())

	var dispatch *domain.DispatchError
	require.ErrorAs(t, err, &dispatch)
	assert.Equal(t, domain.ReasonNotConfigured, dispatch.Reason)
	assert.Empty(t, fm.sent)
}

func TestSubmitBusinessMailFailureSkipsConfirmation(t *testing.T) {
	fm := &fakeMailer{failAt: 1, err: errors.New("dial tcp: connection refused")}
	relay := NewRelay(fm, nil, "orders@aarikaaura.com")

	err := relay.Submit(context.Background(), validMessage())

	var dispatch *domain.DispatchError
	require.ErrorAs(t, err, &dispatch)
	assert.Equal(t, domain.ReasonConnectionRefused, dispatch.Reason)
	assert.Empty(t, fm.sent)
}

func TestSubmitConfirmationFailureIsReported(t *testing.T) {
	fm := &fakeMailer{failAt: 2, err: errors.New("535 5.7.8 authentication failed")}
	relay := NewRelay(fm, nil, "orders@aarikaaura.com")

	err := relay.Submit(context.Background(), validMessage())

	var dispatch *domain.DispatchError
	require.ErrorAs(t, err, &dispatch)
	assert.Equal(t, domain.ReasonAuthFailed, dispatch.Reason)
	require.Len(t, fm.sent, 1)
}

func TestSubmitArchivesMessage(t *testing.T) {
	fm := &fakeMailer{}
	archive := &fakeArchive{}
	relay := NewRelay(fm, archive, "orders@aarikaaura.com")

	require.NoError(t, relay.Submit(context.Background(), validMessage()))

	require.Len(t, archive.saved, 1)
	assert.Equal(t, "Sizing question", archive.saved[0].Subject)
}

func TestSubmitArchiveFailureDoesNotBlockRelay(t *testing.T) {
	fm := &fakeMailer{}
	archive := &fakeArchive{err: errors.New("db down")}
	relay := NewRelay(fm, archive, "orders@aarikaaura.com")

	require.NoError(t, relay.Submit(context.Background(), validMessage()))
	assert.Len(t, fm.sent, 2)
}

func TestClassifyMailerNotConfigured(t *testing.T) {
	fm := &fakeMailer{failAt: 1, err: mailer.ErrNotConfigured}
	relay := NewRelay(fm, nil, "orders@aarikaaura.com")

	err := relay.Submit(context.Background(), validMessage())

	var dispatch *domain.DispatchError
	require.ErrorAs(t, err, &dispatch)
	assert.Equal(t, domain.ReasonNotConfigured, dispatch.Reason)
	assert.ErrorIs(t, err, mailer.ErrNotConfigured)
}

func TestClassifyUnknownFailure(t *testing.T) {
	fm := &fakeMailer{failAt: 1, err: errors.New("something odd")}
	relay := NewRelay(fm, nil, "orders@aarikaaura.com")

	err := relay.Submit(context.Background(), validMessage())

	var dispatch *domain.DispatchError
	require.ErrorAs(t, err, &dispatch)
	assert.Equal(t, domain.ReasonUnknown, dispatch.Reason)
}
