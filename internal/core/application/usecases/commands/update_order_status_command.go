package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order through the kitchen: CONFIRMED, PREPARING, READY.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	target      order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID, requesterID kernel.UUID, target order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate(), target.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:     orderID,
		requesterID: requesterID,
		target:      target,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}
