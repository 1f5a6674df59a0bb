package domain

import (
	"context"
	"errors"
	"fmt"
)

// Step is one position in the linear checkout flow. Steps are
// revisitable until the order is placed.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrOrderCompleted = errors.New("order already placed")
)

// MissingFieldsError reports which required fields block advancement to
// the next checkout step.
type MissingFieldsError struct {
	Step   Step
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required %s fields: %v", e.Step, e.Fields)
}

// ShippingDraft is the persisted part of the checkout form. It is
// written through the storage port on every change and rehydrated
// across reloads.
type ShippingDraft struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
}

// MissingRequired lists the empty required shipping fields. Address2
// and Country are optional; Country defaults at the form layer.
func (d ShippingDraft) MissingRequired() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"email", d.Email},
		{"address1", d.Address1},
		{"city", d.City},
		{"province", d.Province},
		{"postal_code", d.PostalCode},
		{"phone", d.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// PaymentDraft holds card fields. It lives in memory only and is never
// handed to the storage port.
type PaymentDraft struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVC    string `json:"card_cvc"`
}

// MissingRequired lists the empty required payment fields.
func (d PaymentDraft) MissingRequired() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"card_name", d.CardName},
		{"card_number", d.CardNumber},
		{"card_expiry", d.CardExpiry},
		{"card_cvc", d.CardCVC},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// DraftRepository persists shipping drafts. Absent or malformed
// snapshots hydrate as an empty draft.
type DraftRepository interface {
	Load(ctx context.Context, sessionID string) (ShippingDraft, error)
	Save(ctx context.Context, sessionID string, draft ShippingDraft) error
	Delete(ctx context.Context, sessionID string) error
}
