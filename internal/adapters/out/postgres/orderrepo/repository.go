package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/adapters/out/postgres/pgerr"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
			if pgerr.IsUniqueViolation(err) {
				return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.ID().String(), err)
			}
			return err
		}
		return insertLines(tx, dto)
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites every column of the order row, then replaces its lines.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit(clause.Associations).
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderMenuDTO{}).Error; err != nil {
			return err
		}
		return insertLines(tx, dto)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads the order with its lines priced from the catalog. The order row is read
// FOR UPDATE: inside a unit of work it stays locked until commit or rollback, so
// concurrent commands on one order run one after another against the latest status.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderDTO
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Omit(clause.Associations).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	items, err := loadItemLines(db, dto.ID)
	if err != nil {
		return nil, err
	}
	menus, err := loadMenuLines(db, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items, menus)
}

func insertLines(tx *gorm.DB, dto OrderDTO) error {
	if len(dto.Items) > 0 {
		if err := tx.Create(&dto.Items).Error; err != nil {
			return err
		}
	}
	if len(dto.Menus) > 0 {
		if err := tx.Create(&dto.Menus).Error; err != nil {
			return err
		}
	}
	return nil
}

func loadItemLines(db *gorm.DB, orderID uuid.UUID) ([]itemLineRow, error) {
	var rows []itemLineRow
	err := db.Table("order_items AS oi").
		Select("oi.item_id, oi.quantity, i.price").
		Joins("JOIN items AS i ON i.id = oi.item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.item_id").
		Scan(&rows).Error
	return rows, err
}

func loadMenuLines(db *gorm.DB, orderID uuid.UUID) ([]menuLineRow, error) {
	var rows []menuLineRow
	err := db.Table("order_menus AS om").
		Select("om.menu_id, m.price").
		Joins("JOIN menus AS m ON m.id = om.menu_id").
		Where("om.order_id = ?", orderID).
		Order("om.menu_id").
		Scan(&rows).Error
	return rows, err
}
