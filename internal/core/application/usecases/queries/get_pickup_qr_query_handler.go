package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetPickupQRQueryHandler struct {
	db      *gorm.DB
	users   ports.UserDirectory
	encoder ports.QREncoder
}

func NewGetPickupQRQueryHandler(db *gorm.DB, users ports.UserDirectory, encoder ports.QREncoder) GetPickupQRQueryHandler {
	return GetPickupQRQueryHandler{db: db, users: users, encoder: encoder}
}

func (h GetPickupQRQueryHandler) Handle(ctx context.Context, query GetPickupQRQuery) (GetPickupQRQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickupQRQueryResponse{}, err
	}

	var row struct {
		OwnerID     uuid.UUID
		PickupToken *string
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT r.owner_id, o.pickup_token
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.orderID.Bytes()).Scan(&row)
	if result.Error != nil {
		return GetPickupQRQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetPickupQRQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.orderID.String())
	}

	if row.OwnerID != query.requesterID.Bytes() {
		admin, err := isAdmin(ctx, h.users, query.requesterID)
		if err != nil {
			return GetPickupQRQueryResponse{}, err
		}
		if !admin {
			return GetPickupQRQueryResponse{}, ErrNotAuthorized
		}
	}

	if row.PickupToken == nil || *row.PickupToken == "" {
		return GetPickupQRQueryResponse{}, ErrNoPickupToken
	}

	png, err := h.encoder.EncodePNG(*row.PickupToken)
	if err != nil {
		return GetPickupQRQueryResponse{}, fmt.Errorf("encode pickup token: %w", err)
	}
	return GetPickupQRQueryResponse{PNG: png}, nil
}
