package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRecomputeOrderTotalCommandIsNotConstructed = errors.New(
	"RecomputeOrderTotalCommand must be created via NewRecomputeOrderTotalCommand constructor",
)

// RecomputeOrderTotalCommand re-prices a PENDING order from the current catalog.
type RecomputeOrderTotalCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecomputeOrderTotalCommand(orderID, customerID kernel.UUID) (RecomputeOrderTotalCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return RecomputeOrderTotalCommand{}, err
	}

	return RecomputeOrderTotalCommand{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RecomputeOrderTotalCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeOrderTotalCommandIsNotConstructed)
}

func (c RecomputeOrderTotalCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecomputeOrderTotalCommand) CustomerID() kernel.UUID {
	return c.customerID
}
