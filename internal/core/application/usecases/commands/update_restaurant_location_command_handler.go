package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// UpdateRestaurantLocationCommandHandler only writes the document store. Updating a
// RELATIONAL_ONLY restaurant with a complete patch provisions it.
type UpdateRestaurantLocationCommandHandler struct {
	uowFactory   RestaurantUoWFactory
	users        ports.UserDirectory
	locations    ports.LocationStore
	writeTimeout time.Duration
}

func NewUpdateRestaurantLocationCommandHandler(
	uowFactory RestaurantUoWFactory,
	users ports.UserDirectory,
	locations ports.LocationStore,
	writeTimeout time.Duration,
) UpdateRestaurantLocationCommandHandler {
	if writeTimeout <= 0 {
		writeTimeout = DefaultLocationWriteTimeout
	}

	return UpdateRestaurantLocationCommandHandler{
		uowFactory:   uowFactory,
		users:        users,
		locations:    locations,
		writeTimeout: writeTimeout,
	}
}

func (h *UpdateRestaurantLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateRestaurantLocationCommand,
) (*restaurant.Location, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.authorize(ctx, cmd); err != nil {
		return nil, err
	}

	current, err := h.locations.Get(ctx, cmd.RestaurantID())
	var updated *restaurant.Location
	switch {
	case err == nil:
		updated, err = current.Apply(cmd.Patch())
	case errors.Is(err, errs.ErrObjectNotFound):
		updated, err = restaurant.NewLocationFromPatch(cmd.RestaurantID(), cmd.Patch())
	}
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()

	if err = h.locations.Upsert(writeCtx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// authorize reads the relational row in a short unit of work that is never committed.
func (h *UpdateRestaurantLocationCommandHandler) authorize(ctx context.Context, cmd UpdateRestaurantLocationCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}
	return authorizeRestaurantManager(ctx, h.users, r, cmd.RequesterID())
}
