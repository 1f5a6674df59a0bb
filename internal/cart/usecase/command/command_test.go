package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarikaaura/storefront/internal/cart/domain"
	"github.com/aarikaaura/storefront/internal/cart/repository"
	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
	catalogrepo "github.com/aarikaaura/storefront/internal/catalog/repository"
	"github.com/aarikaaura/storefront/pkg/storage"
)

func setupCarts(t *testing.T) (domain.Repository, catalogdomain.Repository) {
	t.Helper()
	carts := repository.NewStorageRepository(storage.NewMemoryStore())
	catalog := catalogrepo.NewStaticRepository(catalogrepo.SeedProducts())
	return carts, catalog
}

func TestAddItemCapturesCatalogPrice(t *testing.T) {
	carts, catalog := setupCarts(t)
	handler := NewAddItemHandler(carts, catalog)
	ctx := context.Background()

	cart, err := handler.Handle(ctx, AddItemCommand{
		SessionID: "session-1",
		ProductID: "1",
		Size:      "M",
	})
	require.NoError(t, err)

	product, err := catalog.FindByID(ctx, "1")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, product.Price, cart.Lines[0].UnitPrice)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	carts, catalog := setupCarts(t)
	handler := NewAddItemHandler(carts, catalog)

	_, err := handler.Handle(context.Background(), AddItemCommand{
		SessionID: "session-1",
		ProductID: "does-not-exist",
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestAddItemTwiceMergesAndPersists(t *testing.T) {
	carts, catalog := setupCarts(t)
	handler := NewAddItemHandler(carts, catalog)
	ctx := context.Background()

	cmd := AddItemCommand{SessionID: "session-1", ProductID: "1", Size: "M"}
	_, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	_, err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	loaded, err := carts.Load(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
}

func TestSetQuantityPersists(t *testing.T) {
	carts, catalog := setupCarts(t)
	add := NewAddItemHandler(carts, catalog)
	set := NewSetQuantityHandler(carts)
	ctx := context.Background()

	_, err := add.Handle(ctx, AddItemCommand{SessionID: "session-1", ProductID: "1", Size: "M"})
	require.NoError(t, err)

	cart, err := set.Handle(ctx, SetQuantityCommand{
		SessionID: "session-1",
		ProductID: "1",
		Size:      "M",
		Quantity:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	loaded, err := carts.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Lines[0].Quantity)
}

func TestSetQuantityZeroLeavesLineUntouched(t *testing.T) {
	carts, catalog := setupCarts(t)
	add := NewAddItemHandler(carts, catalog)
	set := NewSetQuantityHandler(carts)
	ctx := context.Background()

	_, err := add.Handle(ctx, AddItemCommand{SessionID: "session-1", ProductID: "1", Size: "M"})
	require.NoError(t, err)

	_, err = set.Handle(ctx, SetQuantityCommand{
		SessionID: "session-1",
		ProductID: "1",
		Size:      "M",
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	loaded, err := carts.Load(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 1, loaded.Lines[0].Quantity)
}

func TestRemoveItemPersists(t *testing.T) {
	carts, catalog := setupCarts(t)
	add := NewAddItemHandler(carts, catalog)
	remove := NewRemoveItemHandler(carts)
	ctx := context.Background()

	_, err := add.Handle(ctx, AddItemCommand{SessionID: "session-1", ProductID: "1", Size: "M"})
	require.NoError(t, err)

	cart, err := remove.Handle(ctx, RemoveItemCommand{
		SessionID: "session-1",
		ProductID: "1",
		Size:      "M",
	})
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestClearCart(t *testing.T) {
	carts, catalog := setupCarts(t)
	add := NewAddItemHandler(carts, catalog)
	clearCart := NewClearCartHandler(carts)
	ctx := context.Background()

	_, err := add.Handle(ctx, AddItemCommand{SessionID: "session-1", ProductID: "1", Size: "M"})
	require.NoError(t, err)
	_, err = add.Handle(ctx, AddItemCommand{SessionID: "session-1", ProductID: "2"})
	require.NoError(t, err)

	require.NoError(t, clearCart.Handle(ctx, ClearCartCommand{SessionID: "session-1"}))

	loaded, err := carts.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
