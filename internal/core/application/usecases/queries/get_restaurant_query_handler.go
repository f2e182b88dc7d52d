package queries

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db        *gorm.DB
	locations ports.LocationStore
}

func NewGetRestaurantQueryHandler(db *gorm.DB, locations ports.LocationStore) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db, locations: locations}
}

type restaurantRow struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (GetRestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var row restaurantRow
	result := db.Raw(
		`SELECT id, owner_id, name, created_at FROM restaurants WHERE id = ?`,
		query.restaurantID.Bytes(),
	).Scan(&row)
	if result.Error != nil {
		return GetRestaurantQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetRestaurantQueryResponse{}, errs.NewObjectNotFoundError("restaurantId", query.restaurantID.String())
	}

	response := GetRestaurantQueryResponse{
		ID:           query.restaurantID,
		Name:         row.Name,
		CreatedAt:    row.CreatedAt,
		Provisioning: restaurant.RelationalOnly,
	}
	var err error
	if response.OwnerID, err = uuidFromColumn(row.OwnerID); err != nil {
		return GetRestaurantQueryResponse{}, err
	}

	location, err := h.locations.Get(ctx, query.restaurantID)
	switch {
	case err == nil:
		response.Location = location
		response.Provisioning = restaurant.Provisioned
	case !errors.Is(err, errs.ErrObjectNotFound):
		return GetRestaurantQueryResponse{}, err
	}

	if response.Items, err = h.items(db, row.ID); err != nil {
		return GetRestaurantQueryResponse{}, err
	}
	if response.Menus, err = h.menus(db, row.ID); err != nil {
		return GetRestaurantQueryResponse{}, err
	}
	return response, nil
}

func (h GetRestaurantQueryHandler) items(db *gorm.DB, restaurantID uuid.UUID) ([]CatalogItemView, error) {
	rows, err := db.Raw(
		`SELECT id, name, price FROM items WHERE restaurant_id = ? ORDER BY name, id`,
		restaurantID,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]CatalogItemView, 0)
	for rows.Next() {
		var view CatalogItemView
		var id uuid.UUID
		if err = rows.Scan(&id, &view.Name, &view.Price); err != nil {
			return nil, err
		}
		if view.ID, err = uuidFromColumn(id); err != nil {
			return nil, err
		}
		items = append(items, view)
	}
	return items, rows.Err()
}

// menus reads one row per menu/item link and folds them into menus.
func (h GetRestaurantQueryHandler) menus(db *gorm.DB, restaurantID uuid.UUID) ([]CatalogMenuView, error) {
	rows, err := db.Raw(`
		SELECT m.id, m.name, m.price, mi.item_id
		FROM menus m
		LEFT JOIN menu_items mi ON mi.menu_id = m.id
		WHERE m.restaurant_id = ?
		ORDER BY m.name, m.id, mi.item_id
	`, restaurantID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]CatalogMenuView, 0)
	for rows.Next() {
		var (
			view   CatalogMenuView
			id     uuid.UUID
			itemID *uuid.UUID
		)
		if err = rows.Scan(&id, &view.Name, &view.Price, &itemID); err != nil {
			return nil, err
		}
		if view.ID, err = uuidFromColumn(id); err != nil {
			return nil, err
		}

		if n := len(menus); n == 0 || !menus[n-1].ID.IsEqual(view.ID) {
			view.ItemIDs = make([]kernel.UUID, 0)
			menus = append(menus, view)
		}
		if itemID == nil {
			continue
		}
		linked, idErr := uuidFromColumn(*itemID)
		if idErr != nil {
			return nil, idErr
		}
		last := &menus[len(menus)-1]
		last.ItemIDs = append(last.ItemIDs, linked)
	}
	return menus, rows.Err()
}
