package commands

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// UpdateOrderStatusCommandHandler lets the restaurant advance its orders. Statuses owned
// by claim, hand-off or cancellation are rejected with errs.ErrInvalidTransition.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	clock      services.Clock
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	clock services.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		clock:      clock,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	r, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}
	if err = authorizeRestaurantManager(ctx, h.users, r, cmd.RequesterID()); err != nil {
		return err
	}

	if err = o.Advance(cmd.Target(), h.clock.Now()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
