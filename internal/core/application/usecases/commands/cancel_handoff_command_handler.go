package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/metrics"
)

// CancelHandoffCommandHandler puts a claimed order back to READY and removes its delivery
// so that another agent can claim it.
type CancelHandoffCommandHandler struct {
	runner handoffRunner
	clock  services.Clock
}

func NewCancelHandoffCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock services.Clock,
	recorder *metrics.Recorder,
) CancelHandoffCommandHandler {
	return CancelHandoffCommandHandler{
		runner: handoffRunner{uowFactory: uowFactory, recorder: recorder},
		clock:  clock,
	}
}

func (h *CancelHandoffCommandHandler) Handle(ctx context.Context, cmd CancelHandoffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, StepCancel, cmd.OrderID(), cmd.AgentID(),
		func(o *order.Order, d *delivery.Delivery) error {
			if err := o.CancelHandoff(cmd.AgentID(), cmd.Reason(), h.clock.Now()); err != nil {
				return err
			}
			return d.Cancel()
		})
}
