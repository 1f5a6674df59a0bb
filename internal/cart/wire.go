//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	"github.com/aarikaaura/storefront/internal/cart/delivery/http"
	"github.com/aarikaaura/storefront/internal/cart/domain"
	"github.com/aarikaaura/storefront/internal/cart/repository"
	"github.com/aarikaaura/storefront/internal/cart/usecase/command"
	"github.com/aarikaaura/storefront/internal/cart/usecase/query"
	"github.com/aarikaaura/storefront/internal/notification"
	"github.com/aarikaaura/storefront/pkg/storage"

	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
)

// ProvideCartRepository provides the storage-backed cart repository
func ProvideCartRepository(store storage.Store) domain.Repository {
	return repository.NewStorageRepository(store)
}

// ProvidePricing provides the cart pricing rules
func ProvidePricing() domain.Pricing {
	return domain.DefaultPricing()
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
	ProvidePricing,
)

var CommandSet = wire.NewSet(
	command.NewAddItemHandler,
	command.NewRemoveItemHandler,
	command.NewSetQuantityHandler,
	command.NewClearCartHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetCartHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(store storage.Store, catalog catalogdomain.Repository, notifier *notification.Emitter) (*http.CartHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewCartHandler,
	)
	return nil, nil
}
