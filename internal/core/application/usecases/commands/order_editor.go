package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// orderEditor runs a change to a customer's own order in one unit of work.
type orderEditor struct {
	uowFactory OrderUoWFactory
}

type orderEdit func(ctx context.Context, uow OrderUoW, o *order.Order) error

func (e orderEditor) edit(ctx context.Context, orderID, customerID kernel.UUID, apply orderEdit) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return notFoundAs(err, ErrOrderNotFound)
	}
	if !o.CustomerID().IsEqual(customerID) {
		return ErrNotAuthorized
	}

	if err = apply(ctx, uow, o); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
