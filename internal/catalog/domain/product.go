package domain

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Product represents a catalog entry. The catalog is a read-only data
// source; products are never mutated at runtime.
type Product struct {
	ID            string   `json:"id" gorm:"primaryKey"`
	Name          string   `json:"name" gorm:"not null"`
	Price         float64  `json:"price" gorm:"not null"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category,omitempty"`
	Description   string   `json:"description,omitempty"`
	Sizes         []string `json:"sizes,omitempty" gorm:"serializer:json"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsBestSeller  bool     `json:"is_best_seller,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// HasDiscount reports whether the product carries a struck-through
// original price. OriginalPrice, when present, is never below Price.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}

// DiscountPercent derives the discount badge percentage from the
// original price, rounded down. Zero when no discount applies.
func (p *Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int((p.OriginalPrice - p.Price) / p.OriginalPrice * 100)
}

// HasSize reports whether size is one of the product's offered sizes.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Repository defines the contract for catalog data access. Category
// lookups are case-sensitive exact matches.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByCategory(ctx context.Context, category string) ([]Product, error)
}
