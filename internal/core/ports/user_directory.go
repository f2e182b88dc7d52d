package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// User is the part of an externally managed account the core needs.
type User struct {
	ID   kernel.UUID
	Role kernel.Role
}

// UserDirectory resolves users by id. Returns errs.ObjectNotFoundError for unknown ids.
type UserDirectory interface {
	Get(ctx context.Context, id kernel.UUID) (User, error)
}
