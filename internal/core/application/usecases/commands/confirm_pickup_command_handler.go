package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/metrics"
)

// ConfirmPickupCommandHandler moves the order and its delivery to PICKED_UP once the agent
// presents the right pickup token. A wrong token changes nothing.
type ConfirmPickupCommandHandler struct {
	runner handoffRunner
	clock  services.Clock
}

func NewConfirmPickupCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock services.Clock,
	recorder *metrics.Recorder,
) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		runner: handoffRunner{uowFactory: uowFactory, recorder: recorder},
		clock:  clock,
	}
}

func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, StepPickup, cmd.OrderID(), cmd.AgentID(),
		func(o *order.Order, d *delivery.Delivery) error {
			now := h.clock.Now()
			if err := o.ConfirmPickup(cmd.AgentID(), cmd.PickupToken(), now); err != nil {
				return err
			}
			return d.MarkPickedUp(now)
		})
}
