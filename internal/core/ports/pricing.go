package ports

import (
	"context"

	"zinger/internal/core/domain/model/catalog"
	"zinger/internal/core/domain/model/shop"
)

// CatalogPriceOracle returns the live price and availability of a menu item.
type CatalogPriceOracle interface {
	GetItem(ctx context.Context, itemID int64) (catalog.Item, error)
}

// ConfigurationProvider returns the ordering configuration of a shop.
type ConfigurationProvider interface {
	GetByShop(ctx context.Context, shopID int64) (shop.Configuration, error)
}
