package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID, customerID, itemID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(orderID.Validate(), customerID.Validate(), itemID.Validate(), quantityErr); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID:    orderID,
		customerID: customerID,
		itemID:     itemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c AddOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}
