package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aarikaaura/storefront/internal/cart/domain"
	"github.com/aarikaaura/storefront/pkg/logger"
	"github.com/aarikaaura/storefront/pkg/storage"
)

const keyPrefix = "cart:"

// StorageRepository persists cart snapshots through the key-value
// storage port, one JSON snapshot per session.
type StorageRepository struct {
	store storage.Store
}

func NewStorageRepository(store storage.Store) *StorageRepository {
	return &StorageRepository{store: store}
}

func cartKey(sessionID string) string {
	return keyPrefix + sessionID
}

// Load hydrates the cart for a session. An absent key or an unparsable
// snapshot yields an empty cart, never an error.
func (r *StorageRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := r.store.Get(ctx, cartKey(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return domain.NewCart(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("session_id", sessionID).
			Msg("Discarding malformed cart snapshot")
		return domain.NewCart(sessionID), nil
	}
	cart.SessionID = sessionID
	return &cart, nil
}

// Save writes the full line set synchronously after every mutation.
func (r *StorageRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.store.Set(ctx, cartKey(cart.SessionID), data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
