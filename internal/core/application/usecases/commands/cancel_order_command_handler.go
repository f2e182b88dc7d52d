package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// CancelOrderCommandHandler cancels a PENDING or CONFIRMED order. Any other status fails
// with errs.ErrInvalidTransition; a claimed order is released with CancelHandoff instead.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	clock      services.Clock
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	clock services.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		clock:      clock,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return notFoundAs(err, ErrOrderNotFound)
	}

	if !o.CustomerID().IsEqual(cmd.RequesterID()) {
		r, getErr := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
		if getErr != nil {
			return notFoundAs(getErr, ErrRestaurantNotFound)
		}
		if err = authorizeRestaurantManager(ctx, h.users, r, cmd.RequesterID()); err != nil {
			return err
		}
	}

	if err = o.Cancel(cmd.Reason(), h.clock.Now()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
