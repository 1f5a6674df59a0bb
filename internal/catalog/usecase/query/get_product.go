package query

import (
	"context"
	"fmt"

	"github.com/aarikaaura/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to get a product by id
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.Repository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.Repository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	return h.repo.FindByID(ctx, q.ID)
}
