//go:build wireinject
// +build wireinject

package catalog

import (
	"math/rand"
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/aarikaaura/storefront/internal/catalog/delivery/http"
	"github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/catalog/repository"
	"github.com/aarikaaura/storefront/internal/catalog/usecase/query"
)

// ProvideCatalogRepository provides the gorm-backed catalog repository
func ProvideCatalogRepository(db *gorm.DB) domain.Repository {
	return repository.NewGormRepository(db)
}

// ProvideRandSource provides the shuffle seed for related products
func ProvideRandSource() rand.Source {
	return rand.NewSource(time.Now().UnixNano())
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)

var QuerySet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewRelatedProductsHandler,
	ProvideRandSource,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		QuerySet,
		http.NewCatalogHandler,
	)
	return nil, nil
}
