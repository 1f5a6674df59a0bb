package command

import (
	"context"

	"github.com/aarikaaura/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to delete a cart line by its
// identity key.
type RemoveItemCommand struct {
	SessionID string
	ProductID string
	Size      string
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	carts domain.Repository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.Repository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command. Removing an absent line is a
// no-op, not an error.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	if cmd.ProductID == "" {
		return nil, domain.ErrInvalidProduct
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(cmd.ProductID, cmd.Size)

	if err := h.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
