package kafka

import "time"

// OrderLine is one cart line snapshot inside an order event.
type OrderLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderPlacedEvent is published when a checkout flow completes.
type OrderPlacedEvent struct {
	EventID     string      `json:"event_id"`
	EventType   string      `json:"event_type"`
	OrderID     string      `json:"order_id"`
	SessionID   string      `json:"session_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Lines       []OrderLine `json:"lines"`
	Subtotal    float64     `json:"subtotal"`
	Tax         float64     `json:"tax"`
	ShippingFee float64     `json:"shipping_fee"`
	Total       float64     `json:"total"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
