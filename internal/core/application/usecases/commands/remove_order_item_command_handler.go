package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// RemoveOrderItemCommandHandler drops the whole line of an item.
type RemoveOrderItemCommandHandler struct {
	editor orderEditor
}

func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{editor: orderEditor{uowFactory: uowFactory}}
}

func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.editor.edit(ctx, cmd.OrderID(), cmd.CustomerID(),
		func(_ context.Context, _ OrderUoW, o *order.Order) error {
			return notFoundAs(o.RemoveItem(cmd.ItemID()), ErrItemNotFound)
		})
}
