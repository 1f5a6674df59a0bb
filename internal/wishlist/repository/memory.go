package repository

import (
	"sync"

	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/wishlist/domain"
)

// MemoryRepository keeps wishlists in process memory, scoped to the
// session. Insertion order is preserved for listing.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string][]domain.Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string][]domain.Entry)}
}

func (r *MemoryRepository) Add(sessionID string, product catalogdomain.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.sessions[sessionID] {
		if e.Product.ID == product.ID {
			return false
		}
	}
	r.sessions[sessionID] = append(r.sessions[sessionID], domain.Entry{Product: product})
	return true
}

func (r *MemoryRepository) Remove(sessionID, productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.sessions[sessionID]
	for i, e := range entries {
		if e.Product.ID == productID {
			r.sessions[sessionID] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Contains(sessionID, productID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.sessions[sessionID] {
		if e.Product.ID == productID {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) List(sessionID string) []domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.sessions[sessionID]
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out
}

func (r *MemoryRepository) Count(sessionID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions[sessionID])
}

func (r *MemoryRepository) TotalValue(sessionID string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, e := range r.sessions[sessionID] {
		total += e.Product.Price
	}
	return total
}

func (r *MemoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
}
