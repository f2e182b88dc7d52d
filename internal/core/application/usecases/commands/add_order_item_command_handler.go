package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler adds units of an item to a PENDING order. The total is
// recomputed before the order is saved.
type AddOrderItemCommandHandler struct {
	editor orderEditor
}

func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{editor: orderEditor{uowFactory: uowFactory}}
}

func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.editor.edit(ctx, cmd.OrderID(), cmd.CustomerID(),
		func(ctx context.Context, uow OrderUoW, o *order.Order) error {
			item, err := uow.CatalogRepository().GetItem(ctx, cmd.ItemID())
			if err != nil {
				return notFoundAs(err, ErrItemNotFound)
			}
			return o.AddItem(item, cmd.Quantity())
		})
}
