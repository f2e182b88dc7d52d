package commands

import (
	"errors"
	"fmt"
	"slices"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemRequest asks for quantity units of one catalog item.
type OrderItemRequest struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand places an order with a restaurant. Items and menus are optional;
// an empty order stays PENDING with a zero total until lines are added.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, restaurantID,
//	    []OrderItemRequest{{ItemID: pizzaID, Quantity: 2}},
//	    []kernel.UUID{comboID},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []OrderItemRequest
	menuIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	items []OrderItemRequest,
	menuIDs []kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
		cmd.setItems(items),
		cmd.setMenuIDs(menuIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customerID = customerID
	cmd.restaurantID = restaurantID
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Items() []OrderItemRequest {
	return slices.Clone(c.items)
}

func (c CreateOrderCommand) MenuIDs() []kernel.UUID {
	return slices.Clone(c.menuIDs)
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	for _, item := range items {
		if err := item.ItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = slices.Clone(items)
	return nil
}

func (c *CreateOrderCommand) setMenuIDs(menuIDs []kernel.UUID) error {
	for _, id := range menuIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.menuIDs = slices.Clone(menuIDs)
	return nil
}
