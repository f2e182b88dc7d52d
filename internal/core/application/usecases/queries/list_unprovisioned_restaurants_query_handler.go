package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUnprovisionedRestaurantsQueryHandler struct {
	db        *gorm.DB
	locations ports.LocationStore
}

func NewListUnprovisionedRestaurantsQueryHandler(
	db *gorm.DB,
	locations ports.LocationStore,
) ListUnprovisionedRestaurantsQueryHandler {
	return ListUnprovisionedRestaurantsQueryHandler{db: db, locations: locations}
}

// Handle reads every restaurant row and asks the document store which ones are missing.
func (h ListUnprovisionedRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListUnprovisionedRestaurantsQuery,
) (ListUnprovisionedRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUnprovisionedRestaurantsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(`SELECT id, owner_id, name, created_at FROM restaurants ORDER BY created_at, id`).
		Rows()
	if err != nil {
		return ListUnprovisionedRestaurantsQueryResponse{}, err
	}
	defer rows.Close()

	all := make(map[kernel.UUID]UnprovisionedRestaurant)
	ordered := make([]kernel.UUID, 0)
	for rows.Next() {
		var (
			id, ownerID uuid.UUID
			name        string
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &ownerID, &name, &createdAt); err != nil {
			return ListUnprovisionedRestaurantsQueryResponse{}, err
		}

		entry := UnprovisionedRestaurant{Name: name, CreatedAt: createdAt}
		if entry.ID, err = uuidFromColumn(id); err != nil {
			return ListUnprovisionedRestaurantsQueryResponse{}, err
		}
		if entry.OwnerID, err = uuidFromColumn(ownerID); err != nil {
			return ListUnprovisionedRestaurantsQueryResponse{}, err
		}
		all[entry.ID] = entry
		ordered = append(ordered, entry.ID)
	}
	if err = rows.Err(); err != nil {
		return ListUnprovisionedRestaurantsQueryResponse{}, err
	}

	restaurants := make([]UnprovisionedRestaurant, 0)
	if len(ordered) == 0 {
		return ListUnprovisionedRestaurantsQueryResponse{Restaurants: restaurants}, nil
	}

	missing, err := h.locations.Missing(ctx, ordered)
	if err != nil {
		return ListUnprovisionedRestaurantsQueryResponse{}, err
	}
	isMissing := make(map[kernel.UUID]bool, len(missing))
	for _, id := range missing {
		isMissing[id] = true
	}
	for _, id := range ordered {
		if isMissing[id] {
			restaurants = append(restaurants, all[id])
		}
	}
	return ListUnprovisionedRestaurantsQueryResponse{Restaurants: restaurants}, nil
}
