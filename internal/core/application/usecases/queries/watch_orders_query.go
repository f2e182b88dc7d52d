package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrWatchOrdersQueryIsNotConstructed = errors.New(
	"WatchOrdersQuery must be created via NewWatchOrdersQuery constructor",
)

// WatchOrdersQuery asks whether a requester may follow live order events. With an order id
// the same people as GetOrderQuery may follow it; without one the feed covers every order
// and is open to admins only.
type WatchOrdersQuery struct {
	requesterID kernel.UUID
	orderID     *kernel.UUID

	guard guard.ConstructorGuard
}

func NewWatchOrdersQuery(requesterID kernel.UUID, orderID *kernel.UUID) (WatchOrdersQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return WatchOrdersQuery{}, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return WatchOrdersQuery{}, err
		}
	}
	return WatchOrdersQuery{requesterID: requesterID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q WatchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrWatchOrdersQueryIsNotConstructed)
}
