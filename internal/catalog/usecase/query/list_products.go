package query

import (
	"context"

	"github.com/aarikaaura/storefront/internal/catalog/domain"
)

// ListProductsQuery represents the query to list products, optionally
// filtered by exact category match.
type ListProductsQuery struct {
	Category string
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.Repository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.Repository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	if q.Category != "" {
		return h.repo.FindByCategory(ctx, q.Category)
	}
	return h.repo.FindAll(ctx)
}
