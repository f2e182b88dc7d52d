package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

type RemoveOrderMenuCommandHandler struct {
	editor orderEditor
}

func NewRemoveOrderMenuCommandHandler(uowFactory OrderUoWFactory) RemoveOrderMenuCommandHandler {
	return RemoveOrderMenuCommandHandler{editor: orderEditor{uowFactory: uowFactory}}
}

func (h *RemoveOrderMenuCommandHandler) Handle(ctx context.Context, cmd RemoveOrderMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.editor.edit(ctx, cmd.OrderID(), cmd.CustomerID(),
		func(_ context.Context, _ OrderUoW, o *order.Order) error {
			return notFoundAs(o.RemoveMenu(cmd.MenuID()), ErrMenuNotFound)
		})
}
