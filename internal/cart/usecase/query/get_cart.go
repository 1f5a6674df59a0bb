package query

import (
	"context"

	"github.com/aarikaaura/storefront/internal/cart/domain"
)

// GetCartQuery represents the query for a session's cart with derived
// totals.
type GetCartQuery struct {
	SessionID string
}

// CartView is the cart together with its derived pricing, recomputed
// fresh on every read.
type CartView struct {
	Lines  []domain.Line `json:"lines"`
	Totals domain.Totals `json:"totals"`
}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	carts   domain.Repository
	pricing domain.Pricing
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.Repository, pricing domain.Pricing) *GetCartHandler {
	return &GetCartHandler{carts: carts, pricing: pricing}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*CartView, error) {
	cart, err := h.carts.Load(ctx, q.SessionID)
	if err != nil {
		return nil, err
	}

	lines := cart.Lines
	if lines == nil {
		lines = []domain.Line{}
	}
	return &CartView{
		Lines:  lines,
		Totals: cart.Totals(h.pricing),
	}, nil
}
