package command

import (
	"context"

	"github.com/aarikaaura/storefront/internal/cart/domain"
)

// SetQuantityCommand represents the command to overwrite a line's
// quantity.
type SetQuantityCommand struct {
	SessionID string
	ProductID string
	Size      string
	Quantity  int
}

// SetQuantityHandler handles set quantity command
type SetQuantityHandler struct {
	carts domain.Repository
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(carts domain.Repository) *SetQuantityHandler {
	return &SetQuantityHandler{carts: carts}
}

// Handle executes the set quantity command. A quantity below 1 is
// rejected without touching the stored cart; it never deletes the line
// as a side effect.
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) (*domain.Cart, error) {
	if cmd.ProductID == "" {
		return nil, domain.ErrInvalidProduct
	}
	if cmd.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetQuantity(cmd.ProductID, cmd.Size, cmd.Quantity); err != nil {
		return nil, err
	}

	if err := h.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
