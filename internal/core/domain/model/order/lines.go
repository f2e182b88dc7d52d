package order

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemLine is a catalog item on an order with its quantity, priced at the current catalog price.
type ItemLine struct {
	itemID    kernel.UUID
	unitPrice decimal.Decimal
	quantity  int
}

// NewItemLine is used when restoring lines from storage.
func NewItemLine(itemID kernel.UUID, unitPrice decimal.Decimal, quantity int) (ItemLine, error) {
	if err := itemID.Validate(); err != nil {
		return ItemLine{}, err
	}
	if quantity <= 0 {
		return ItemLine{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return ItemLine{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	return ItemLine{itemID: itemID, unitPrice: unitPrice, quantity: quantity}, nil
}

func (l ItemLine) ItemID() kernel.UUID {
	return l.itemID
}

func (l ItemLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

func (l ItemLine) Quantity() int {
	return l.quantity
}

// Subtotal is unitPrice * quantity.
func (l ItemLine) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// MenuLine is a menu on an order. Menus carry no quantity.
type MenuLine struct {
	menuID kernel.UUID
	price  decimal.Decimal
}

func NewMenuLine(menuID kernel.UUID, price decimal.Decimal) (MenuLine, error) {
	if err := menuID.Validate(); err != nil {
		return MenuLine{}, err
	}
	if price.IsNegative() {
		return MenuLine{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	return MenuLine{menuID: menuID, price: price}, nil
}

func (l MenuLine) MenuID() kernel.UUID {
	return l.menuID
}

func (l MenuLine) Price() decimal.Decimal {
	return l.price
}
