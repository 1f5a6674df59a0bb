package query

import (
	"context"
	"math/rand"
	"sync"

	"github.com/aarikaaura/storefront/internal/catalog/domain"
)

// RelatedProductsQuery represents the query for products related to a
// given product: same category, excluding the product itself, in random
// order.
type RelatedProductsQuery struct {
	ProductID string
	Limit     int
}

// RelatedProductsHandler handles related products query
type RelatedProductsHandler struct {
	repo domain.Repository

	// rand.Rand is not goroutine-safe; shuffles are serialized
	mu   sync.Mutex
	rand *rand.Rand
}

// NewRelatedProductsHandler creates a new related products handler
func NewRelatedProductsHandler(repo domain.Repository, src rand.Source) *RelatedProductsHandler {
	return &RelatedProductsHandler{repo: repo, rand: rand.New(src)}
}

// Handle executes the related products query. Ordering uses a
// Fisher-Yates shuffle so every permutation is equally likely.
func (h *RelatedProductsHandler) Handle(ctx context.Context, q RelatedProductsQuery) ([]domain.Product, error) {
	product, err := h.repo.FindByID(ctx, q.ProductID)
	if err != nil {
		return nil, err
	}

	candidates, err := h.repo.FindByCategory(ctx, product.Category)
	if err != nil {
		return nil, err
	}

	related := candidates[:0:0]
	for _, c := range candidates {
		if c.ID != product.ID {
			related = append(related, c)
		}
	}

	h.mu.Lock()
	h.rand.Shuffle(len(related), func(i, j int) {
		related[i], related[j] = related[j], related[i]
	})
	h.mu.Unlock()

	if q.Limit > 0 && len(related) > q.Limit {
		related = related[:q.Limit]
	}
	return related, nil
}
