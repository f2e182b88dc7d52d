package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type WatchOrdersQueryHandler struct {
	db    *gorm.DB
	users ports.UserDirectory
}

func NewWatchOrdersQueryHandler(db *gorm.DB, users ports.UserDirectory) WatchOrdersQueryHandler {
	return WatchOrdersQueryHandler{db: db, users: users}
}

// Handle returns nil when the requester may follow the feed, ErrNotAuthorized when not,
// and errs.ObjectNotFoundError for an unknown order.
func (h WatchOrdersQueryHandler) Handle(ctx context.Context, query WatchOrdersQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}

	if query.orderID == nil {
		admin, err := isAdmin(ctx, h.users, query.requesterID)
		if err != nil {
			return err
		}
		if !admin {
			return ErrNotAuthorized
		}
		return nil
	}

	var row orderParticipants
	result := h.db.WithContext(ctx).Raw(`
		SELECT o.customer_id, r.owner_id, o.delivery_agent_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.orderID.Bytes()).Scan(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", query.orderID.String())
	}

	return authorizeOrderReader(ctx, h.users, row, query.requesterID)
}
