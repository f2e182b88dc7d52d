package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// RecomputeOrderTotalCommandHandler persists the total of the order's lines at current
// catalog prices. Orders past PENDING fail with order.ErrOrderNotEditable.
type RecomputeOrderTotalCommandHandler struct {
	editor orderEditor
}

func NewRecomputeOrderTotalCommandHandler(uowFactory OrderUoWFactory) RecomputeOrderTotalCommandHandler {
	return RecomputeOrderTotalCommandHandler{editor: orderEditor{uowFactory: uowFactory}}
}

func (h *RecomputeOrderTotalCommandHandler) Handle(
	ctx context.Context,
	cmd RecomputeOrderTotalCommand,
) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err := h.editor.edit(ctx, cmd.OrderID(), cmd.CustomerID(),
		func(_ context.Context, _ OrderUoW, o *order.Order) error {
			var err error
			total, err = o.RecomputeTotal()
			return err
		})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
