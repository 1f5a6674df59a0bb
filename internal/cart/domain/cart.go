package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidProduct  = errors.New("product id is required")
	ErrLineNotFound    = errors.New("cart line not found")
)

// Line is one distinct (product, size) pairing in the cart. Two lines
// with the same product but different sizes are separate entries.
// UnitPrice is captured when the line is first inserted.
type Line struct {
	ProductID string  `json:"product_id"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Cart holds the line items for one session.
type Cart struct {
	SessionID string `json:"session_id"`
	Lines     []Line `json:"lines"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

func (c *Cart) find(productID, size string) int {
	for i, line := range c.Lines {
		if line.ProductID == productID && line.Size == size {
			return i
		}
	}
	return -1
}

// Line returns the line matching the identity key, or nil.
func (c *Cart) Line(productID, size string) *Line {
	if i := c.find(productID, size); i >= 0 {
		return &c.Lines[i]
	}
	return nil
}

// AddItem merges into an existing line with the same identity key or
// appends a new line with quantity 1 at the given unit price.
func (c *Cart) AddItem(productID, size string, unitPrice float64) error {
	if productID == "" {
		return ErrInvalidProduct
	}
	if i := c.find(productID, size); i >= 0 {
		c.Lines[i].Quantity++
		return nil
	}
	c.Lines = append(c.Lines, Line{
		ProductID: productID,
		Size:      size,
		Quantity:  1,
		UnitPrice: unitPrice,
	})
	return nil
}

// RemoveItem deletes the line matching the identity key. Removing an
// absent line is not an error.
func (c *Cart) RemoveItem(productID, size string) {
	i := c.find(productID, size)
	if i < 0 {
		return
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

// SetQuantity overwrites the line's quantity. Quantities below 1 are
// rejected; explicit RemoveItem is the only way to drop a line.
func (c *Cart) SetQuantity(productID, size string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	i := c.find(productID, size)
	if i < 0 {
		return ErrLineNotFound
	}
	c.Lines[i].Quantity = quantity
	return nil
}

// Clear empties all lines unconditionally.
func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Pricing holds the rates used to derive cart totals.
type Pricing struct {
	TaxRate               float64
	FreeShippingThreshold float64
	FlatShippingFee       float64
}

// DefaultPricing returns the storefront rates: 13% tax, free shipping
// above 100, flat 9.99 below.
func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0.13,
		FreeShippingThreshold: 100,
		FlatShippingFee:       9.99,
	}
}

// Totals is the derived pricing snapshot, recomputed on every read.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
}

// Totals derives subtotal, tax, shipping fee and total from the lines.
func (c *Cart) Totals(p Pricing) Totals {
	var subtotal float64
	for _, line := range c.Lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}

	var shipping float64
	if !c.IsEmpty() && subtotal <= p.FreeShippingThreshold {
		shipping = p.FlatShippingFee
	}

	tax := subtotal * p.TaxRate
	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		ShippingFee: shipping,
		Total:       subtotal + tax + shipping,
	}
}

// Repository defines the contract for cart persistence. Load never
// fails on an absent or malformed snapshot; it falls back to an empty
// cart.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}
