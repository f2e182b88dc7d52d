package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultClaimableLimit = 50
	MaxClaimableLimit     = 200
)

var ErrListClaimableOrdersQueryIsNotConstructed = errors.New(
	"ListClaimableOrdersQuery must be created via NewListClaimableOrdersQuery constructor",
)

type ListClaimableOrdersQuery struct {
	restaurantID *kernel.UUID
	near         *kernel.Location
	limit        int

	guard guard.ConstructorGuard
}

// NewListClaimableOrdersQuery narrows the list to one restaurant when restaurantID is set.
// When near is set every entry carries the distance from near to its restaurant.
// A zero limit means DefaultClaimableLimit.
func NewListClaimableOrdersQuery(
	restaurantID *kernel.UUID,
	near *kernel.Location,
	limit int,
) (ListClaimableOrdersQuery, error) {
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return ListClaimableOrdersQuery{}, err
		}
	}
	if near != nil {
		if err := near.Validate(); err != nil {
			return ListClaimableOrdersQuery{}, err
		}
	}
	if limit == 0 {
		limit = DefaultClaimableLimit
	}
	if limit < 0 || limit > MaxClaimableLimit {
		return ListClaimableOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxClaimableLimit)
	}

	return ListClaimableOrdersQuery{
		restaurantID: restaurantID,
		near:         near,
		limit:        limit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListClaimableOrdersQueryIsNotConstructed)
}

type ClaimableOrder struct {
	OrderID        kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	TotalPrice     decimal.Decimal
	PlacedAt       time.Time
	// DistanceKm is nil when the query had no reference point or the restaurant
	// has no location document.
	DistanceKm *float64
	Address    string
}

type ListClaimableOrdersQueryResponse struct {
	Orders []ClaimableOrder
}
