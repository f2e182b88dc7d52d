package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository persists deliveries. At most one delivery exists per order.
type DeliveryRepository interface {
	// Add inserts a delivery. A second delivery for the same order fails with
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID returns errs.ObjectNotFoundError when the order has no delivery.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// Delete removes the delivery so the order can be claimed again.
	Delete(ctx context.Context, id kernel.UUID) error
}
