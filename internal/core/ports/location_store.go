package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// LocationStore is the document store holding one location document per restaurant.
// It does not take part in relational transactions.
type LocationStore interface {
	// Upsert creates or replaces the document keyed by the restaurant id.
	Upsert(ctx context.Context, location *restaurant.Location) error

	// Get returns errs.ObjectNotFoundError when the restaurant has no document.
	Get(ctx context.Context, restaurantID kernel.UUID) (*restaurant.Location, error)

	// Delete is idempotent: deleting a missing document is not an error.
	Delete(ctx context.Context, restaurantID kernel.UUID) error

	// Missing returns the subset of ids that have no document.
	Missing(ctx context.Context, restaurantIDs []kernel.UUID) ([]kernel.UUID, error)
}
