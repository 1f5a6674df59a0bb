package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarikaaura/storefront/internal/checkout/domain"
	"github.com/aarikaaura/storefront/pkg/storage"
)

func TestLoadMissingReturnsEmptyDraft(t *testing.T) {
	repo := NewStorageDraftRepository(storage.NewMemoryStore())

	draft, err := repo.Load(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, domain.ShippingDraft{}, draft)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	repo := NewStorageDraftRepository(storage.NewMemoryStore())
	ctx := context.Background()

	draft := domain.ShippingDraft{
		Name:       "Priya Sharma",
		Email:      "priya@example.com",
		Address1:   "12 Lakeshore Blvd",
		City:       "Toronto",
		Province:   "ON",
		PostalCode: "M5V 1A1",
		Phone:      "416-555-0199",
		Country:    "Canada",
	}
	require.NoError(t, repo.Save(ctx, "session-1", draft))

	loaded, err := repo.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, draft, loaded)
}

func TestLoadMalformedFallsBackToEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "shipping:session-1", []byte("!!")))

	repo := NewStorageDraftRepository(store)

	draft, err := repo.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ShippingDraft{}, draft)
}

func TestDelete(t *testing.T) {
	repo := NewStorageDraftRepository(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "session-1", domain.ShippingDraft{Name: "gone"}))
	require.NoError(t, repo.Delete(ctx, "session-1"))

	draft, err := repo.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ShippingDraft{}, draft)
}
