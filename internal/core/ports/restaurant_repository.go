package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository persists the relational half of a restaurant.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// CatalogRepository persists the items and menus a restaurant sells.
type CatalogRepository interface {
	AddItem(ctx context.Context, item *catalog.Item) error
	GetItem(ctx context.Context, id kernel.UUID) (*catalog.Item, error)
	AddMenu(ctx context.Context, menu *catalog.Menu) error
	GetMenu(ctx context.Context, id kernel.UUID) (*catalog.Menu, error)
}
