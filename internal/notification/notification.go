package notification

import "time"

// Category classifies a notification for presentation.
type Category string

const (
	CategorySuccess  Category = "success"
	CategoryError    Category = "error"
	CategoryWarning  Category = "warning"
	CategoryInfo     Category = "info"
	CategoryCart     Category = "cart"
	CategoryWishlist Category = "wishlist"
)

// Notification is one transient user-facing status message. It is
// removed when its TTL elapses or on explicit dismissal, whichever
// comes first.
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Category  Category      `json:"category"`
	CreatedAt time.Time     `json:"created_at"`
	TTL       time.Duration `json:"ttl"`
}
