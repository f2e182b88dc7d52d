package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}
	return GetRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// GetRestaurantQueryResponse joins both halves of a restaurant. Location is nil and
// Provisioning is RelationalOnly when the document is missing.
type GetRestaurantQueryResponse struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	Name         string
	CreatedAt    time.Time
	Location     *restaurant.Location
	Provisioning restaurant.ProvisioningState
	Items        []CatalogItemView
	Menus        []CatalogMenuView
}

type CatalogItemView struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
}

type CatalogMenuView struct {
	ID      kernel.UUID
	Name    string
	Price   decimal.Decimal
	ItemIDs []kernel.UUID
}
