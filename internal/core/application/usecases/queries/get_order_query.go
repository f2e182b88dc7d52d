package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of a requester. The customer, the assigned
// agent, the restaurant owner and admins may read it.
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, requesterID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, requesterID: requesterID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the order read model. ConfirmationCode is only filled in for
// the customer, who hands it to the agent at the door.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	RestaurantID     kernel.UUID
	Status           order.Status
	TotalPrice       decimal.Decimal
	PlacedAt         time.Time
	AgentID          *kernel.UUID
	ConfirmationCode string
	Items            []OrderItemView
	Menus            []OrderMenuView
}

type OrderItemView struct {
	ItemID    kernel.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type OrderMenuView struct {
	MenuID kernel.UUID
	Name   string
	Price  decimal.Decimal
}
