package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu bundles items of the same restaurant under one price.
// An order adds a menu at most once; its price does not depend on the bundled items.
type Menu struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	itemIDs      []kernel.UUID
	guard        guard.ConstructorGuard
}

// NewMenu requires at least one item. Duplicate item ids are collapsed.
func NewMenu(
	id, restaurantID kernel.UUID,
	name string,
	price decimal.Decimal,
	itemIDs []kernel.UUID,
) (*Menu, error) {
	menu := &Menu{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		menu.setName(name),
		validatePrice(price),
		menu.setItemIDs(itemIDs),
	); err != nil {
		return nil, err
	}

	menu.id = id
	menu.restaurantID = restaurantID
	menu.price = price
	return menu, nil
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) RestaurantID() kernel.UUID {
	return m.restaurantID
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Price() decimal.Decimal {
	return m.price
}

func (m *Menu) ItemIDs() []kernel.UUID {
	return slices.Clone(m.itemIDs)
}

func (m *Menu) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Menu) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredError("itemIds")
	}

	unique := make([]kernel.UUID, 0, len(itemIDs))
	for i, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("itemIds", fmt.Errorf("item %d: %w", i, err))
		}
		if !slices.ContainsFunc(unique, id.IsEqual) {
			unique = append(unique, id)
		}
	}

	m.itemIDs = unique
	return nil
}
