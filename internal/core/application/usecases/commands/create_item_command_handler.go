package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/ports"
)

type CreateItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
	users      ports.UserDirectory
}

func NewCreateItemCommandHandler(uowFactory RestaurantUoWFactory, users ports.UserDirectory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle stores the item after checking that the requester manages the restaurant.
// A negative price is rejected by the catalog.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
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

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}
	if err = authorizeRestaurantManager(ctx, h.users, r, cmd.RequesterID()); err != nil {
		return err
	}

	item, err := catalog.NewItem(cmd.ItemID(), r.ID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}
	if err = uow.CatalogRepository().AddItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
