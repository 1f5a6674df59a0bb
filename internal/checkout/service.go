package checkout

import (
	"context"
	"sync"

	"github.com/google/uuid"

	cartdomain "github.com/aarikaaura/storefront/internal/cart/domain"
	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/checkout/domain"
	"github.com/aarikaaura/storefront/internal/notification"
	"github.com/aarikaaura/storefront/kafka"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// OrderPublisher publishes the order placed event. A nil publisher
// disables publishing without affecting the flow.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// Service drives the three-step checkout flow. Shipping drafts go
// through the draft repository; payment drafts and step positions stay
// in memory for the lifetime of the session.
type Service struct {
	drafts    domain.DraftRepository
	carts     cartdomain.Repository
	catalog   catalogdomain.Repository
	pricing   cartdomain.Pricing
	notifier  *notification.Emitter
	publisher OrderPublisher

	mu        sync.Mutex
	payments  map[string]domain.PaymentDraft
	steps     map[string]domain.Step
	completed map[string]string // sessionID -> orderID
}

func NewService(
	drafts domain.DraftRepository,
	carts cartdomain.Repository,
	catalog catalogdomain.Repository,
	pricing cartdomain.Pricing,
	notifier *notification.Emitter,
	publisher OrderPublisher,
) *Service {
	return &Service{
		drafts:    drafts,
		carts:     carts,
		catalog:   catalog,
		pricing:   pricing,
		notifier:  notifier,
		publisher: publisher,
		payments:  make(map[string]domain.PaymentDraft),
		steps:     make(map[string]domain.Step),
		completed: make(map[string]string),
	}
}

// Status is the flow snapshot returned to the review screen.
type Status struct {
	Step           domain.Step          `json:"step"`
	StepName       string               `json:"step_name"`
	Shipping       domain.ShippingDraft `json:"shipping"`
	PaymentEntered bool                 `json:"payment_entered"`
	OrderID        string               `json:"order_id,omitempty"`
	Completed      bool                 `json:"completed"`
}

// Status returns the current flow state, rehydrating the shipping
// draft from storage.
func (s *Service) Status(ctx context.Context, sessionID string) (Status, error) {
	draft, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	step := s.stepLocked(sessionID)
	_, paymentEntered := s.payments[sessionID]
	orderID, completed := s.completed[sessionID]

	return Status{
		Step:           step,
		StepName:       step.String(),
		Shipping:       draft,
		PaymentEntered: paymentEntered,
		OrderID:        orderID,
		Completed:      completed,
	}, nil
}

// UpdateShipping persists the shipping draft on every change.
func (s *Service) UpdateShipping(ctx context.Context, sessionID string, draft domain.ShippingDraft) error {
	if draft.Country == "" {
		draft.Country = "Canada"
	}
	return s.drafts.Save(ctx, sessionID, draft)
}

// UpdatePayment stores the payment draft in memory only. It does not
// survive the session and is never persisted.
func (s *Service) UpdatePayment(sessionID string, draft domain.PaymentDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[sessionID] = draft
}

// Advance moves to the next step if the current step's required fields
// are filled. A refused advance emits a warning notification and
// returns MissingFieldsError.
func (s *Service) Advance(ctx context.Context, sessionID string) (domain.Step, error) {
	s.mu.Lock()
	step := s.stepLocked(sessionID)
	payment := s.payments[sessionID]
	s.mu.Unlock()

	switch step {
	case domain.StepShipping:
		draft, err := s.drafts.Load(ctx, sessionID)
		if err != nil {
			return step, err
		}
		if missing := draft.MissingRequired(); len(missing) > 0 {
			s.notifier.Emit(sessionID, "Please fill all required shipping details!", notification.CategoryWarning)
			return step, &domain.MissingFieldsError{Step: step, Fields: missing}
		}
	case domain.StepPayment:
		if missing := payment.MissingRequired(); len(missing) > 0 {
			s.notifier.Emit(sessionID, "Please fill all payment details!", notification.CategoryWarning)
			return step, &domain.MissingFieldsError{Step: step, Fields: missing}
		}
	case domain.StepReview:
		return step, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps[sessionID] = step + 1
	return step + 1, nil
}

// Back returns to the previous step; the flow never goes before
// shipping.
func (s *Service) Back(sessionID string) domain.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := s.stepLocked(sessionID)
	if step > domain.StepShipping {
		step--
		s.steps[sessionID] = step
	}
	return step
}

// PlaceOrder completes the flow: it refuses on an empty cart, clears
// the cart, emits the success notification and publishes the order
// placed event. Completion is irreversible.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	if _, done := s.completed[sessionID]; done {
		s.mu.Unlock()
		return "", domain.ErrOrderCompleted
	}
	s.mu.Unlock()

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if cart.IsEmpty() {
		return "", domain.ErrEmptyCart
	}

	draft, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return "", err
	}

	orderID := uuid.NewString()
	totals := cart.Totals(s.pricing)
	event := kafka.OrderPlacedEvent{
		OrderID:     orderID,
		SessionID:   sessionID,
		Name:        draft.Name,
		Email:       draft.Email,
		Lines:       s.orderLines(ctx, cart),
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		ShippingFee: totals.ShippingFee,
		Total:       totals.Total,
	}

	cart.Clear()
	if err := s.carts.Save(ctx, cart); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.completed[sessionID] = orderID
	delete(s.payments, sessionID)
	delete(s.steps, sessionID)
	s.mu.Unlock()

	s.notifier.Emit(sessionID, "Order placed successfully!", notification.CategorySuccess)

	// Publishing is best-effort; a broker failure never corrupts the
	// already-cleared cart.
	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
			logger.Error(ctx).
				Err(err).
				Str("order_id", orderID).
				Msg("Failed to publish order placed event")
		}
	}

	return orderID, nil
}

func (s *Service) stepLocked(sessionID string) domain.Step {
	if step, ok := s.steps[sessionID]; ok {
		return step
	}
	return domain.StepShipping
}

func (s *Service) orderLines(ctx context.Context, cart *cartdomain.Cart) []kafka.OrderLine {
	lines := make([]kafka.OrderLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		name := l.ProductID
		if product, err := s.catalog.FindByID(ctx, l.ProductID); err == nil {
			name = product.Name
		}
		lines = append(lines, kafka.OrderLine{
			ProductID: l.ProductID,
			Name:      name,
			Size:      l.Size,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return lines
}
