package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRemoveOrderMenuCommandIsNotConstructed = errors.New(
	"RemoveOrderMenuCommand must be created via NewRemoveOrderMenuCommand constructor",
)

type RemoveOrderMenuCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	menuID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOrderMenuCommand(orderID, customerID, menuID kernel.UUID) (RemoveOrderMenuCommand, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate(), menuID.Validate()); err != nil {
		return RemoveOrderMenuCommand{}, err
	}

	return RemoveOrderMenuCommand{
		orderID:    orderID,
		customerID: customerID,
		menuID:     menuID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderMenuCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderMenuCommandIsNotConstructed)
}

func (c RemoveOrderMenuCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemoveOrderMenuCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RemoveOrderMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}
