package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// AddOrderMenuCommandHandler adds a menu once; a second add fails with
// order.ErrMenuAlreadyInOrder.
type AddOrderMenuCommandHandler struct {
	editor orderEditor
}

func NewAddOrderMenuCommandHandler(uowFactory OrderUoWFactory) AddOrderMenuCommandHandler {
	return AddOrderMenuCommandHandler{editor: orderEditor{uowFactory: uowFactory}}
}

func (h *AddOrderMenuCommandHandler) Handle(ctx context.Context, cmd AddOrderMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.editor.edit(ctx, cmd.OrderID(), cmd.CustomerID(),
		func(ctx context.Context, uow OrderUoW, o *order.Order) error {
			menu, err := uow.CatalogRepository().GetMenu(ctx, cmd.MenuID())
			if err != nil {
				return notFoundAs(err, ErrMenuNotFound)
			}
			return o.AddMenu(menu)
		})
}
