// Package orderrepo persists order aggregates with their item and menu lines.
// Line prices are not stored: they are joined from the catalog when an order is loaded.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PlacedAt         time.Time       `gorm:"not null;index"`
	PickupToken      *string         `gorm:"type:char(32)"`
	ConfirmationCode *string         `gorm:"type:char(6)"`
	DeliveryAgentID  *uuid.UUID      `gorm:"type:uuid;index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Menus []OrderMenuDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a quantity of one catalog item in an order.
type OrderItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderMenuDTO is a menu added to an order.
type OrderMenuDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (OrderMenuDTO) TableName() string {
	return "order_menus"
}

// itemLineRow and menuLineRow are order lines joined with their catalog price.
type itemLineRow struct {
	ItemID   uuid.UUID
	Quantity int
	Price    decimal.Decimal
}

type menuLineRow struct {
	MenuID uuid.UUID
	Price  decimal.Decimal
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Status:       aggregate.Status().String(),
		TotalPrice:   aggregate.TotalPrice(),
		PlacedAt:     aggregate.PlacedAt(),
	}

	if agentID := aggregate.AgentID(); agentID != nil {
		raw := agentID.Bytes()
		dto.DeliveryAgentID = &raw
	}
	if codes := aggregate.Codes(); codes != nil {
		token, code := codes.PickupToken(), codes.ConfirmationCode()
		dto.PickupToken = &token
		dto.ConfirmationCode = &code
	}

	for _, l := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:  dto.ID,
			ItemID:   l.ItemID().Bytes(),
			Quantity: l.Quantity(),
		})
	}
	for _, l := range aggregate.Menus() {
		dto.Menus = append(dto.Menus, OrderMenuDTO{
			OrderID: dto.ID,
			MenuID:  l.MenuID().Bytes(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO, itemRows []itemLineRow, menuRows []menuLineRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.DeliveryAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes(dto.DeliveryAgentID[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	var codes *order.HandoffCodes
	if dto.PickupToken != nil && dto.ConfirmationCode != nil {
		c, codesErr := order.NewHandoffCodes(*dto.PickupToken, *dto.ConfirmationCode)
		if codesErr != nil {
			return nil, codesErr
		}
		codes = &c
	}

	items := make([]order.ItemLine, 0, len(itemRows))
	for _, row := range itemRows {
		itemID, lineErr := kernel.UUIDFromBytes(row.ItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := order.NewItemLine(itemID, row.Price, row.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, line)
	}

	menus := make([]order.MenuLine, 0, len(menuRows))
	for _, row := range menuRows {
		menuID, lineErr := kernel.UUIDFromBytes(row.MenuID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := order.NewMenuLine(menuID, row.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		menus = append(menus, line)
	}

	return order.RestoreOrder(id, customerID, restaurantID, status, dto.TotalPrice, dto.PlacedAt,
		agentID, codes, items, menus)
}
