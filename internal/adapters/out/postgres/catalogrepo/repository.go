package catalogrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/adapters/out/postgres/pgerr"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
// Catalog entries record no domain events, so nothing is tracked.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AddItem(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("item", item.ID().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormCatalogRepository) GetItem(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// AddMenu inserts the menu and its item links. Every linked item must exist.
func (r *GormCatalogRepository) AddMenu(ctx context.Context, menu *catalog.Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}

	dto := menuFromDomain(menu)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found int64
		if err := tx.Model(&ItemDTO{}).
			Where("id IN ? AND restaurant_id = ?", itemIDs(dto), dto.RestaurantID).
			Count(&found).Error; err != nil {
			return err
		}
		if int(found) != len(dto.Items) {
			return errs.NewObjectNotFoundError("itemIds", "one or more menu items")
		}

		return tx.Create(&dto).Error
	})
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("menu", menu.ID().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormCatalogRepository) GetMenu(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return menuToDomain(dto)
}

func itemIDs(dto MenuDTO) []any {
	ids := make([]any, 0, len(dto.Items))
	for _, mi := range dto.Items {
		ids = append(ids, mi.ItemID)
	}
	return ids
}
