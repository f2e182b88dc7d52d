package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// DeleteRestaurantCommandHandler removes the location document first and the relational
// row second. If the second step fails the restaurant is left RELATIONAL_ONLY, which the
// provisioning audit reports; deleting again finishes the job.
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	users      ports.UserDirectory
	locations  ports.LocationStore
}

func NewDeleteRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	users ports.UserDirectory,
	locations ports.LocationStore,
) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		locations:  locations,
	}
}

func (h *DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()

	r, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}
	if err = authorizeRestaurantManager(ctx, h.users, r, cmd.RequesterID()); err != nil {
		return err
	}

	if err = h.locations.Delete(ctx, r.ID()); err != nil {
		return err
	}
	if err = restaurantRepo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
