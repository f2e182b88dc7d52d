package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	users ports.UserDirectory
}

func NewGetOrderQueryHandler(db *gorm.DB, users ports.UserDirectory) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, users: users}
}

type orderRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	RestaurantID     uuid.UUID
	OwnerID          uuid.UUID
	Status           string
	TotalPrice       decimal.Decimal
	PlacedAt         time.Time
	DeliveryAgentID  *uuid.UUID
	ConfirmationCode *string
}

// Handle returns errs.ObjectNotFoundError for an unknown order and ErrNotAuthorized when
// the requester has no part in it. Lines are priced from the current catalog.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var row orderRow
	result := db.Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			r.owner_id,
			o.status,
			o.total_price,
			o.placed_at,
			o.delivery_agent_id,
			o.confirmation_code
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.orderID.Bytes()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.orderID.String())
	}

	participants := orderParticipants{
		CustomerID:      row.CustomerID,
		OwnerID:         row.OwnerID,
		DeliveryAgentID: row.DeliveryAgentID,
	}
	if err := authorizeOrderReader(ctx, h.users, participants, query.requesterID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	isCustomer := row.CustomerID == query.requesterID.Bytes()

	response, err := row.toResponse()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if isCustomer && row.ConfirmationCode != nil {
		response.ConfirmationCode = *row.ConfirmationCode
	}

	if response.Items, err = h.items(db, row.ID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.Menus, err = h.menus(db, row.ID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	return response, nil
}

func (r orderRow) toResponse() (GetOrderQueryResponse, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		Status:     status,
		TotalPrice: r.TotalPrice,
		PlacedAt:   r.PlacedAt,
	}
	if response.ID, err = uuidFromColumn(r.ID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = uuidFromColumn(r.CustomerID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.RestaurantID, err = uuidFromColumn(r.RestaurantID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if r.DeliveryAgentID != nil {
		agentID, agentErr := uuidFromColumn(*r.DeliveryAgentID)
		if agentErr != nil {
			return GetOrderQueryResponse{}, agentErr
		}
		response.AgentID = &agentID
	}
	return response, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID uuid.UUID) ([]OrderItemView, error) {
	rows, err := db.Raw(`
		SELECT oi.item_id, i.name, oi.quantity, i.price
		FROM order_items oi
		JOIN items i ON i.id = oi.item_id
		WHERE oi.order_id = ?
		ORDER BY i.name, oi.item_id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var view OrderItemView
		var id uuid.UUID
		if err = rows.Scan(&id, &view.Name, &view.Quantity, &view.UnitPrice); err != nil {
			return nil, err
		}
		if view.ItemID, err = uuidFromColumn(id); err != nil {
			return nil, err
		}
		items = append(items, view)
	}
	return items, rows.Err()
}

func (h GetOrderQueryHandler) menus(db *gorm.DB, orderID uuid.UUID) ([]OrderMenuView, error) {
	rows, err := db.Raw(`
		SELECT om.menu_id, m.name, m.price
		FROM order_menus om
		JOIN menus m ON m.id = om.menu_id
		WHERE om.order_id = ?
		ORDER BY m.name, om.menu_id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]OrderMenuView, 0)
	for rows.Next() {
		var view OrderMenuView
		var id uuid.UUID
		if err = rows.Scan(&id, &view.Name, &view.Price); err != nil {
			return nil, err
		}
		if view.MenuID, err = uuidFromColumn(id); err != nil {
			return nil, err
		}
		menus = append(menus, view)
	}
	return menus, rows.Err()
}
