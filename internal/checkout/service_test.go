package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/aarikaaura/storefront/internal/cart/domain"
	cartrepo "github.com/aarikaaura/storefront/internal/cart/repository"
	catalogrepo "github.com/aarikaaura/storefront/internal/catalog/repository"
	"github.com/aarikaaura/storefront/internal/checkout/domain"
	checkoutrepo "github.com/aarikaaura/storefront/internal/checkout/repository"
	"github.com/aarikaaura/storefront/internal/notification"
	"github.com/aarikaaura/storefront/kafka"
	"github.com/aarikaaura/storefront/pkg/storage"
)

type capturingPublisher struct {
	events []kafka.OrderPlacedEvent
	err    error
}

func (p *capturingPublisher) PublishOrderPlaced(_ context.Context, event kafka.OrderPlacedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type fixture struct {
	service   *Service
	carts     cartdomain.Repository
	notifier  *notification.Emitter
	publisher *capturingPublisher
}

func setup(t *testing.T) *fixture {
	t.Helper()

	store := storage.NewMemoryStore()
	carts := cartrepo.NewStorageRepository(store)
	catalog := catalogrepo.NewStaticRepository(catalogrepo.SeedProducts())
	notifier := notification.NewEmitter(time.Minute)
	t.Cleanup(notifier.Close)
	publisher := &capturingPublisher{}

	service := NewService(
		checkoutrepo.NewStorageDraftRepository(store),
		carts,
		catalog,
		cartdomain.DefaultPricing(),
		notifier,
		publisher,
	)
	return &fixture{service: service, carts: carts, notifier: notifier, publisher: publisher}
}

func validShipping() domain.ShippingDraft {
	return domain.ShippingDraft{
		Name:       "Priya Sharma",
		Email:      "priya@example.com",
		Address1:   "12 Lakeshore Blvd",
		City:       "Toronto",
		Province:   "ON",
		PostalCode: "M5V 1A1",
		Phone:      "416-555-0199",
	}
}

func validPayment() domain.PaymentDraft {
	return domain.PaymentDraft{
		CardName:   "Priya Sharma",
		CardNumber: "4111111111111111",
		CardExpiry: "12/27",
		CardCVC:    "123",
	}
}

func fillCart(t *testing.T, f *fixture, sessionID string) {
	t.Helper()
	ctx := context.Background()
	cart, err := f.carts.Load(ctx, sessionID)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem("1", "M", 79.99))
	require.NoError(t, f.carts.Save(ctx, cart))
}

func TestFlowStartsAtShipping(t *testing.T) {
	f := setup(t)

	status, err := f.service.Status(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepShipping, status.Step)
	assert.False(t, status.Completed)
}

func TestAdvanceBlockedByMissingShippingField(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	draft := validShipping()
	draft.PostalCode = ""
	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", draft))

	step, err := f.service.Advance(ctx, "session-1")

	var missing *domain.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.StepShipping, step)
	assert.Contains(t, missing.Fields, "postal_code")

	// The refusal surfaces as a warning toast
	active := f.notifier.Active("session-1")
	require.Len(t, active, 1)
	assert.Equal(t, notification.CategoryWarning, active[0].Category)
	assert.Equal(t, "Please fill all required shipping details!", active[0].Message)
}

func TestAdvanceBlockedByMissingPayment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", validShipping()))
	step, err := f.service.Advance(ctx, "session-1")
	require.NoError(t, err)
	require.Equal(t, domain.StepPayment, step)

	_, err = f.service.Advance(ctx, "session-1")

	var missing *domain.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.StepPayment, missing.Step)
}

func TestAdvanceThroughAllSteps(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", validShipping()))
	f.service.UpdatePayment("session-1", validPayment())

	step, err := f.service.Advance(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, step)

	step, err = f.service.Advance(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, step)

	// Review is the last step
	step, err = f.service.Advance(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, step)
}

func TestBackRevisitsEarlierSteps(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", validShipping()))
	_, err := f.service.Advance(ctx, "session-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StepShipping, f.service.Back("session-1"))
	// Never before shipping
	assert.Equal(t, domain.StepShipping, f.service.Back("session-1"))
}

func TestShippingDraftPersistsAcrossReload(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", validShipping()))

	status, err := f.service.Status(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", status.Shipping.Name)
	assert.Equal(t, "Canada", status.Shipping.Country)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := setup(t)

	_, err := f.service.PlaceOrder(context.Background(), "session-1")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrderClearsCartAndPublishes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fillCart(t, f, "session-1")
	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", validShipping()))

	orderID, err := f.service.PlaceOrder(ctx, "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	cart, err := f.carts.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	require.Len(t, f.publisher.events, 1)
	event := f.publisher.events[0]
	assert.Equal(t, orderID, event.OrderID)
	assert.Equal(t, "priya@example.com", event.Email)
	require.Len(t, event.Lines, 1)
	assert.Equal(t, "Elegant Straight Suit", event.Lines[0].Name)
	assert.InDelta(t, 79.99, event.Subtotal, 0.0001)

	active := f.notifier.Active("session-1")
	require.Len(t, active, 1)
	assert.Equal(t, notification.CategorySuccess, active[0].Category)
	assert.Equal(t, "Order placed successfully!", active[0].Message)
}

func TestPlaceOrderIsIrreversible(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fillCart(t, f, "session-1")
	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", validShipping()))

	orderID, err := f.service.PlaceOrder(ctx, "session-1")
	require.NoError(t, err)

	// Refilling the cart does not reopen the flow
	fillCart(t, f, "session-1")
	_, err = f.service.PlaceOrder(ctx, "session-1")
	assert.ErrorIs(t, err, domain.ErrOrderCompleted)

	status, err := f.service.Status(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, status.Completed)
	assert.Equal(t, orderID, status.OrderID)
}

func TestPlaceOrderSurvivesPublisherFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.publisher.err = assert.AnError
	fillCart(t, f, "session-1")
	require.NoError(t, f.service.UpdateShipping(ctx, "session-1", validShipping()))

	orderID, err := f.service.PlaceOrder(ctx, "session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	cart, err := f.carts.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestPlaceOrderWithoutPublisher(t *testing.T) {
	store := storage.NewMemoryStore()
	carts := cartrepo.NewStorageRepository(store)
	catalog := catalogrepo.NewStaticRepository(catalogrepo.SeedProducts())
	notifier := notification.NewEmitter(time.Minute)
	t.Cleanup(notifier.Close)

	service := NewService(
		checkoutrepo.NewStorageDraftRepository(store),
		carts,
		catalog,
		cartdomain.DefaultPricing(),
		notifier,
		nil,
	)

	ctx := context.Background()
	cart, err := carts.Load(ctx, "session-1")
	require.NoError(t, err)
	require.NoError(t, cart.AddItem("1", "M", 79.99))
	require.NoError(t, carts.Save(ctx, cart))

	_, err = service.PlaceOrder(ctx, "session-1")
	assert.NoError(t, err)
}
