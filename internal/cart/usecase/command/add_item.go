package command

import (
	"context"

	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/cart/domain"
)

// AddItemCommand represents the command to add one unit of a product,
// optionally in a specific size, to the session's cart.
type AddItemCommand struct {
	SessionID string
	ProductID string
	Size      string
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	carts   domain.Repository
	catalog catalogdomain.Repository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts domain.Repository, catalog catalogdomain.Repository) *AddItemHandler {
	return &AddItemHandler{carts: carts, catalog: catalog}
}

// Handle executes the add item command. The unit price is captured from
// the catalog at the moment of first insertion; merging into an
// existing line leaves its captured price untouched.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	if cmd.ProductID == "" {
		return nil, domain.ErrInvalidProduct
	}

	product, err := h.catalog.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(product.ID, cmd.Size, product.Price); err != nil {
		return nil, err
	}

	if err := h.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
