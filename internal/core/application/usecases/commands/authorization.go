package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// authorizeRestaurantManager lets the restaurant owner through, and admins.
func authorizeRestaurantManager(
	ctx context.Context,
	users ports.UserDirectory,
	r *restaurant.Restaurant,
	requesterID kernel.UUID,
) error {
	if r.IsManagedBy(requesterID) {
		return nil
	}

	user, err := users.Get(ctx, requesterID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNotAuthorized
	}
	if err != nil {
		return err
	}
	if user.Role != kernel.RoleAdmin {
		return ErrNotAuthorized
	}
	return nil
}

// notFoundAs maps a repository miss to the command-level sentinel.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return sentinel
	}
	return err
}
