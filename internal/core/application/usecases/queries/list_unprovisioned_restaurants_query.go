package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListUnprovisionedRestaurantsQueryIsNotConstructed = errors.New(
	"ListUnprovisionedRestaurantsQuery must be created via NewListUnprovisionedRestaurantsQuery constructor",
)

// ListUnprovisionedRestaurantsQuery finds restaurants that have a relational row but
// no location document.
type ListUnprovisionedRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

func NewListUnprovisionedRestaurantsQuery() (ListUnprovisionedRestaurantsQuery, error) {
	return ListUnprovisionedRestaurantsQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListUnprovisionedRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListUnprovisionedRestaurantsQueryIsNotConstructed)
}

type UnprovisionedRestaurant struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Name      string
	CreatedAt time.Time
}

type ListUnprovisionedRestaurantsQueryResponse struct {
	Restaurants []UnprovisionedRestaurant
}
