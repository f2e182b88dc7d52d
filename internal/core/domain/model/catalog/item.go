package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single dish offered by one restaurant.
type Item struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	guard        guard.ConstructorGuard
}

// NewItem validates every field; the price may be zero but never negative.
func NewItem(id, restaurantID kernel.UUID, name string, price decimal.Decimal) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		item.setName(name),
		validatePrice(price),
	); err != nil {
		return nil, err
	}

	item.id = id
	item.restaurantID = restaurantID
	item.price = price
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) RestaurantID() kernel.UUID {
	return i.restaurantID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() decimal.Decimal {
	return i.price
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price.String()))
	}
	return nil
}
