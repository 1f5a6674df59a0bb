package command

import (
	"context"

	"github.com/aarikaaura/storefront/internal/cart/domain"
)

// ClearCartCommand represents the command to empty the session's cart.
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	carts domain.Repository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts domain.Repository) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return err
	}

	cart.Clear()

	return h.carts.Save(ctx, cart)
}
