package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListClaimableOrdersQueryHandler struct {
	db        *gorm.DB
	locations ports.LocationStore
}

func NewListClaimableOrdersQueryHandler(db *gorm.DB, locations ports.LocationStore) ListClaimableOrdersQueryHandler {
	return ListClaimableOrdersQueryHandler{db: db, locations: locations}
}

// Handle lists READY orders nobody has claimed, oldest first.
func (h ListClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListClaimableOrdersQuery,
) (ListClaimableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListClaimableOrdersQueryResponse{}, err
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT o.id, o.restaurant_id, r.name, o.total_price, o.placed_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status = ? AND o.delivery_agent_id IS NULL`)
	args := []any{order.Ready.String()}
	if query.restaurantID != nil {
		sql.WriteString(` AND o.restaurant_id = ?`)
		args = append(args, query.restaurantID.Bytes())
	}
	sql.WriteString(` ORDER BY o.placed_at, o.id LIMIT ?`)
	args = append(args, query.limit)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return ListClaimableOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]ClaimableOrder, 0)
	for rows.Next() {
		var (
			id, restaurantID uuid.UUID
			name             string
			total            decimal.Decimal
			placedAt         time.Time
		)
		if err = rows.Scan(&id, &restaurantID, &name, &total, &placedAt); err != nil {
			return ListClaimableOrdersQueryResponse{}, err
		}

		entry := ClaimableOrder{RestaurantName: name, TotalPrice: total, PlacedAt: placedAt}
		if entry.OrderID, err = uuidFromColumn(id); err != nil {
			return ListClaimableOrdersQueryResponse{}, err
		}
		if entry.RestaurantID, err = uuidFromColumn(restaurantID); err != nil {
			return ListClaimableOrdersQueryResponse{}, err
		}
		orders = append(orders, entry)
	}
	if err = rows.Err(); err != nil {
		return ListClaimableOrdersQueryResponse{}, err
	}

	if err = h.locate(ctx, orders, query.near); err != nil {
		return ListClaimableOrdersQueryResponse{}, err
	}
	return ListClaimableOrdersQueryResponse{Orders: orders}, nil
}

// locate fills in address and distance, reading each restaurant's document once.
func (h ListClaimableOrdersQueryHandler) locate(ctx context.Context, orders []ClaimableOrder, near *kernel.Location) error {
	seen := make(map[kernel.UUID]*restaurant.Location)
	for i := range orders {
		loc, ok := seen[orders[i].RestaurantID]
		if !ok {
			var err error
			loc, err = h.locations.Get(ctx, orders[i].RestaurantID)
			if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
				return err
			}
			seen[orders[i].RestaurantID] = loc
		}
		if loc == nil {
			continue
		}

		orders[i].Address = loc.Address()
		if near == nil {
			continue
		}
		distance, err := near.DistanceKm(loc.Point())
		if err != nil {
			return err
		}
		orders[i].DistanceKm = &distance
	}
	return nil
}
