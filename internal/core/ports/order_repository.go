// Package ports defines the contracts between the core and its infrastructure:
// repositories over the relational store, the location document store, the user
// directory and the outbound event publishers.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their item and menu lines.
type OrderRepository interface {
	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row and replaces its lines with the aggregate's current lines.
	// Nullable columns (agent, codes) are written even when they become empty.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with lines priced from the current catalog and locks its row
	// for the rest of the surrounding transaction.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
