package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Message is a structured contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
}

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks presence of all required fields and the email format.
// No relay call may be attempted for a message that fails validation.
func (m Message) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", m.Name},
		{"email", m.Email},
		{"subject", m.Subject},
		{"message", m.Body},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Reason: "required"}
		}
	}
	if !emailPattern.MatchString(m.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// DispatchReason categorizes an email relay failure.
type DispatchReason string

const (
	ReasonNotConfigured     DispatchReason = "not_configured"
	ReasonConnectionRefused DispatchReason = "connection_refused"
	ReasonAuthFailed        DispatchReason = "authentication_failed"
	ReasonUnknown           DispatchReason = "unknown"
)

// Message returns the human-readable explanation shown to the
// submitter.
func (r DispatchReason) Message() string {
	switch r {
	case ReasonNotConfigured:
		return "Email service not configured. Please try again later."
	case ReasonConnectionRefused:
		return "Unable to connect to email service. Please try again later."
	case ReasonAuthFailed:
		return "Email service configuration error. Please check your email credentials."
	default:
		return "Failed to send email"
	}
}

// DispatchError surfaces an email relay failure to the submitting
// caller with a categorized reason.
type DispatchError struct {
	Reason DispatchReason
	Err    error
}

func (e *DispatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dispatch failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("dispatch failed (%s)", e.Reason)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
