package domain

import (
	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
)

// Entry is a saved product reference, keyed by product id and unique
// within a session's wishlist.
type Entry struct {
	Product catalogdomain.Product `json:"product"`
}

// Repository defines the contract for wishlist access. The collection
// is deduplicated by product id; entries live for the session only.
type Repository interface {
	// Add inserts the product iff not already present and reports
	// whether a new entry was created.
	Add(sessionID string, product catalogdomain.Product) bool
	// Remove deletes the entry if present; absent ids are a no-op.
	Remove(sessionID, productID string) bool
	Contains(sessionID, productID string) bool
	List(sessionID string) []Entry
	Count(sessionID string) int
	// TotalValue sums the prices of every saved product.
	TotalValue(sessionID string) float64
	Clear(sessionID string)
}
