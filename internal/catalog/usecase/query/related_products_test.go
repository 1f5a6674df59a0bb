package query

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/catalog/repository"
)

func relatedHandler() *RelatedProductsHandler {
	repo := repository.NewStaticRepository(repository.SeedProducts())
	return NewRelatedProductsHandler(repo, rand.NewSource(1))
}

func TestRelatedExcludesTheProductItself(t *testing.T) {
	handler := relatedHandler()

	related, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: "2"})
	require.NoError(t, err)

	for _, p := range related {
		assert.NotEqual(t, "2", p.ID)
	}
}

func TestRelatedStaysWithinCategory(t *testing.T) {
	handler := relatedHandler()

	related, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: "2"})
	require.NoError(t, err)

	require.Len(t, related, 1)
	assert.Equal(t, "plazzo", related[0].Category)
	assert.Equal(t, "3", related[0].ID)
}

func TestRelatedHonorsLimit(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Category: "suits"},
		{ID: "b", Category: "suits"},
		{ID: "c", Category: "suits"},
		{ID: "d", Category: "suits"},
		{ID: "e", Category: "suits"},
	}
	repo := repository.NewStaticRepository(products)
	handler := NewRelatedProductsHandler(repo, rand.NewSource(1))

	related, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: "a", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, related, 2)
}

func TestRelatedShufflePreservesSet(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Category: "suits"},
		{ID: "b", Category: "suits"},
		{ID: "c", Category: "suits"},
		{ID: "d", Category: "suits"},
	}
	repo := repository.NewStaticRepository(products)
	handler := NewRelatedProductsHandler(repo, rand.NewSource(42))

	related, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: "a"})
	require.NoError(t, err)

	ids := make(map[string]bool, len(related))
	for _, p := range related {
		ids[p.ID] = true
	}
	assert.Equal(t, map[string]bool{"b": true, "c": true, "d": true}, ids)
}

func TestRelatedUnknownProduct(t *testing.T) {
	handler := relatedHandler()

	_, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
