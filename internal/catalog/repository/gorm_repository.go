package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aarikaaura/storefront/internal/catalog/domain"
)

// GormRepository reads the catalog from PostgreSQL. The table is seeded
// once at startup and treated as read-only afterwards.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// AutoMigrate creates the products table and seeds it when empty.
func (r *GormRepository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&domain.Product{}); err != nil {
		return fmt.Errorf("failed to migrate products: %w", err)
	}

	var count int64
	if err := r.db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := SeedProducts()
	if err := r.db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}

func (r *GormRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
