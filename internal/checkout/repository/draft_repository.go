package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aarikaaura/storefront/internal/checkout/domain"
	"github.com/aarikaaura/storefront/pkg/logger"
	"github.com/aarikaaura/storefront/pkg/storage"
)

const keyPrefix = "shipping:"

// StorageDraftRepository persists shipping drafts through the
// key-value storage port. Payment fields never pass through here.
type StorageDraftRepository struct {
	store storage.Store
}

func NewStorageDraftRepository(store storage.Store) *StorageDraftRepository {
	return &StorageDraftRepository{store: store}
}

func draftKey(sessionID string) string {
	return keyPrefix + sessionID
}

func (r *StorageDraftRepository) Load(ctx context.Context, sessionID string) (domain.ShippingDraft, error) {
	data, err := r.store.Get(ctx, draftKey(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return domain.ShippingDraft{}, nil
	}
	if err != nil {
		return domain.ShippingDraft{}, fmt.Errorf("failed to load shipping draft: %w", err)
	}

	var draft domain.ShippingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("session_id", sessionID).
			Msg("Discarding malformed shipping draft")
		return domain.ShippingDraft{}, nil
	}
	return draft, nil
}

func (r *StorageDraftRepository) Save(ctx context.Context, sessionID string, draft domain.ShippingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping draft: %w", err)
	}
	if err := r.store.Set(ctx, draftKey(sessionID), data); err != nil {
		return fmt.Errorf("failed to save shipping draft: %w", err)
	}
	return nil
}

func (r *StorageDraftRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, draftKey(sessionID))
}
