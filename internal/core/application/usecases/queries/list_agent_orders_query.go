package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListAgentOrdersQueryIsNotConstructed = errors.New(
	"ListAgentOrdersQuery must be created via NewListAgentOrdersQuery constructor",
)

// ListAgentOrdersQuery lists the orders an agent has claimed and not yet lost to a
// cancelled hand-off, newest claim first.
type ListAgentOrdersQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListAgentOrdersQuery(agentID kernel.UUID) (ListAgentOrdersQuery, error) {
	if err := agentID.Validate(); err != nil {
		return ListAgentOrdersQuery{}, err
	}
	return ListAgentOrdersQuery{agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAgentOrdersQueryIsNotConstructed)
}

type AgentOrder struct {
	OrderID        kernel.UUID
	DeliveryID     kernel.UUID
	RestaurantID   kernel.UUID
	OrderStatus    order.Status
	DeliveryStatus delivery.Status
	TotalPrice     decimal.Decimal
	AssignedAt     time.Time
	PickupTime     *time.Time
	DeliveryTime   *time.Time
}

type ListAgentOrdersQueryResponse struct {
	Orders []AgentOrder
}
