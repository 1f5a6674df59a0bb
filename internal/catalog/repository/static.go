package repository

import (
	"context"

	"github.com/aarikaaura/storefront/internal/catalog/domain"
)

// StaticRepository serves the built-in seed catalog. It is the default
// data source when no database is configured.
type StaticRepository struct {
	products []domain.Product
	byID     map[string]*domain.Product
}

func NewStaticRepository(products []domain.Product) *StaticRepository {
	if products == nil {
		products = SeedProducts()
	}
	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &StaticRepository{products: products, byID: byID}
}

func (r *StaticRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *p
	return &out, nil
}

func (r *StaticRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *StaticRepository) FindByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// SeedProducts returns the built-in catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Elegant Straight Suit",
			Price:         79.99,
			OriginalPrice: 129.99,
			Image:         "/products/product_1.png",
			Category:      "suits",
			Description:   "Classic straight-cut suit with delicate embroidery, perfect for formal occasions.",
			Sizes:         []string{"S", "M", "L", "XL"},
			IsBestSeller:  true,
			Rating:        4.8,
		},
		{
			ID:            "2",
			Name:          "Embroidered Palazzo Suit",
			Price:         99.99,
			OriginalPrice: 129.99,
			Image:         "/products/plazoimage.jpg",
			Category:      "plazzo",
			Description:   "Flowy palazzo bottom with matching embroidered top, comfy & stylish.",
			Sizes:         []string{"M", "L", "XL"},
			IsNew:         true,
			Rating:        4.5,
		},
		{
			ID:            "3",
			Name:          "Silk Palazzo Set",
			Price:         69.99,
			OriginalPrice: 129.99,
			Image:         "/products/product_2.jpeg",
			Category:      "plazzo",
			Description:   "Lightweight silk palazzo set in seasonal colours.",
			Sizes:         []string{"S", "M", "L"},
			Rating:        4.2,
		},
		{
			ID:            "4",
			Name:          "Festive Sharara",
			Price:         119.99,
			OriginalPrice: 149.99,
			Image:         "/products/product_3.jpeg",
			Category:      "sharara",
			Description:   "Traditional sharara with rich details, great for functions and weddings.",
			Sizes:         []string{"M", "L", "XL"},
			IsNew:         true,
			Rating:        4.6,
		},
		{
			ID:            "5",
			Name:          "Bridal Lehenga (Light)",
			Price:         249.99,
			OriginalPrice: 329.99,
			Image:         "/products/product_4.png",
			Category:      "lehenga",
			Description:   "Elegant lehenga set with handcrafted embellishments.",
			Sizes:         []string{"S", "M", "L", "XL"},
			IsBestSeller:  true,
			Rating:        4.9,
		},
	}
}
