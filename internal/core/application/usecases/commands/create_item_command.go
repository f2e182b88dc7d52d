package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds a dish to a restaurant's catalog.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	restaurantID kernel.UUID
	requesterID  kernel.UUID
	name         string
	price        decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateItemCommand(
	itemID, restaurantID, requesterID kernel.UUID,
	name string,
	price decimal.Decimal,
) (CreateItemCommand, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(
		itemID.Validate(),
		restaurantID.Validate(),
		requesterID.Validate(),
		nameErr,
	); err != nil {
		return CreateItemCommand{}, err
	}

	return CreateItemCommand{
		itemID:       itemID,
		restaurantID: restaurantID,
		requesterID:  requesterID,
		name:         name,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateItemCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CreateItemCommand) Name() string {
	return c.name
}

func (c CreateItemCommand) Price() decimal.Decimal {
	return c.price
}
