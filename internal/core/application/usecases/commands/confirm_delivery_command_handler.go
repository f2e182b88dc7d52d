package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/metrics"
)

// ConfirmDeliveryCommandHandler completes the order when the agent presents the customer's
// confirmation code. The status is checked before the code, so a replay after delivery
// fails with errs.ErrInvalidTransition.
type ConfirmDeliveryCommandHandler struct {
	runner handoffRunner
	clock  services.Clock
}

func NewConfirmDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock services.Clock,
	recorder *metrics.Recorder,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		runner: handoffRunner{uowFactory: uowFactory, recorder: recorder},
		clock:  clock,
	}
}

func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, StepDelivery, cmd.OrderID(), cmd.AgentID(),
		func(o *order.Order, d *delivery.Delivery) error {
			now := h.clock.Now()
			if err := o.ConfirmDelivery(cmd.AgentID(), cmd.ConfirmationCode(), now); err != nil {
				return err
			}
			return d.MarkDelivered(now)
		})
}
