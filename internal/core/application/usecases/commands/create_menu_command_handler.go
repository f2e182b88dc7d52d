package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/ports"
)

type CreateMenuCommandHandler struct {
	uowFactory RestaurantUoWFactory
	users      ports.UserDirectory
}

func NewCreateMenuCommandHandler(uowFactory RestaurantUoWFactory, users ports.UserDirectory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
		users:      users,
	}
}

// Handle stores the menu. Every listed item must already belong to the restaurant,
// otherwise ErrItemNotFound is returned.
func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
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

	menu, err := catalog.NewMenu(cmd.MenuID(), r.ID(), cmd.Name(), cmd.Price(), cmd.ItemIDs())
	if err != nil {
		return err
	}
	if err = uow.CatalogRepository().AddMenu(ctx, menu); err != nil {
		return notFoundAs(err, ErrItemNotFound)
	}

	return uow.Commit(ctx)
}
