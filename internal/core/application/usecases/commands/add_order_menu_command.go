package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddOrderMenuCommandIsNotConstructed = errors.New(
	"AddOrderMenuCommand must be created via NewAddOrderMenuCommand constructor",
)

type AddOrderMenuCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	menuID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddOrderMenuCommand(orderID, customerID, menuID kernel.UUID) (AddOrderMenuCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate(), menuID.Validate()); err != nil {
		return AddOrderMenuCommand{}, err
	}

	return AddOrderMenuCommand{
		orderID:    orderID,
		customerID: customerID,
		menuID:     menuID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderMenuCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderMenuCommandIsNotConstructed)
}

func (c AddOrderMenuCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderMenuCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c AddOrderMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}
