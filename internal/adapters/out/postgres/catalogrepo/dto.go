// Package catalogrepo persists the items and menus sold by restaurants.
package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (ItemDTO) TableName() string {
	return "items"
}

type MenuDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Items        []MenuItemDTO   `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// MenuItemDTO links a menu to one of the items it bundles.
type MenuItemDTO struct {
	MenuID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func itemFromDomain(item *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Price:        item.Price(),
	}
}

func itemToDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewItem(id, restaurantID, dto.Name, dto.Price)
}

func menuFromDomain(menu *catalog.Menu) MenuDTO {
	dto := MenuDTO{
		ID:           menu.ID().Bytes(),
		RestaurantID: menu.RestaurantID().Bytes(),
		Name:         menu.Name(),
		Price:        menu.Price(),
	}
	for _, itemID := range menu.ItemIDs() {
		dto.Items = append(dto.Items, MenuItemDTO{MenuID: dto.ID, ItemID: itemID.Bytes()})
	}
	return dto
}

func menuToDomain(dto MenuDTO) (*catalog.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, mi := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(mi.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return catalog.NewMenu(id, restaurantID, dto.Name, dto.Price, itemIDs)
}
