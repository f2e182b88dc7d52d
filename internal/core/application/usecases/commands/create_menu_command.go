package commands

import (
	"errors"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// CreateMenuCommand bundles existing items of one restaurant under a single price.
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID       kernel.UUID
	restaurantID kernel.UUID
	requesterID  kernel.UUID
	name         string
	price        decimal.Decimal
	itemIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateMenuCommand(
	menuID, restaurantID, requesterID kernel.UUID,
	name string,
	price decimal.Decimal,
	itemIDs []kernel.UUID,
) (CreateMenuCommand, error) {
	name = strings.TrimSpace(name)

	var nameErr, itemsErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if len(itemIDs) == 0 {
		itemsErr = errs.NewValueIsRequiredError("itemIds")
	}
	if err := errors.Join(
		menuID.Validate(),
		restaurantID.Validate(),
		requesterID.Validate(),
		nameErr,
		itemsErr,
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return CreateMenuCommand{
		menuID:       menuID,
		restaurantID: restaurantID,
		requesterID:  requesterID,
		name:         name,
		price:        price,
		itemIDs:      slices.Clone(itemIDs),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c CreateMenuCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateMenuCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CreateMenuCommand) Name() string {
	return c.name
}

func (c CreateMenuCommand) Price() decimal.Decimal {
	return c.price
}

func (c CreateMenuCommand) ItemIDs() []kernel.UUID {
	return slices.Clone(c.itemIDs)
}
