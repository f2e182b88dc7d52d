package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAgentOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListAgentOrdersQueryHandler(db *gorm.DB) ListAgentOrdersQueryHandler {
	return ListAgentOrdersQueryHandler{db: db}
}

func (h ListAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAgentOrdersQuery,
) (ListAgentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAgentOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			d.id,
			o.restaurant_id,
			o.status,
			d.status,
			o.total_price,
			d.assigned_at,
			d.pickup_time,
			d.delivery_time
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.agent_id = ?
		ORDER BY d.assigned_at DESC, d.id
	`, query.agentID.Bytes()).Rows()
	if err != nil {
		return ListAgentOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]AgentOrder, 0)
	for rows.Next() {
		var (
			orderID, deliveryID, restaurantID uuid.UUID
			orderStatus, deliveryStatus       string
			entry                             AgentOrder
		)
		if err = rows.Scan(
			&orderID, &deliveryID, &restaurantID,
			&orderStatus, &deliveryStatus,
			&entry.TotalPrice,
			&entry.AssignedAt, &entry.PickupTime, &entry.DeliveryTime,
		); err != nil {
			return ListAgentOrdersQueryResponse{}, err
		}

		if entry.OrderID, err = uuidFromColumn(orderID); err != nil {
			return ListAgentOrdersQueryResponse{}, err
		}
		if entry.DeliveryID, err = uuidFromColumn(deliveryID); err != nil {
			return ListAgentOrdersQueryResponse{}, err
		}
		if entry.RestaurantID, err = uuidFromColumn(restaurantID); err != nil {
			return ListAgentOrdersQueryResponse{}, err
		}
		if entry.OrderStatus, err = order.ParseStatus(orderStatus); err != nil {
			return ListAgentOrdersQueryResponse{}, err
		}
		if entry.DeliveryStatus, err = delivery.ParseStatus(deliveryStatus); err != nil {
			return ListAgentOrdersQueryResponse{}, err
		}
		orders = append(orders, entry)
	}
	if err = rows.Err(); err != nil {
		return ListAgentOrdersQueryResponse{}, err
	}

	return ListAgentOrdersQueryResponse{Orders: orders}, nil
}
