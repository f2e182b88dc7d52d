package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/metrics"
)

// StartTransitCommandHandler moves the delivery from PICKED_UP to IN_TRANSIT.
// The order has no transit status and stays PICKED_UP.
type StartTransitCommandHandler struct {
	runner handoffRunner
}

func NewStartTransitCommandHandler(uowFactory DeliveryUoWFactory, recorder *metrics.Recorder) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		runner: handoffRunner{uowFactory: uowFactory, recorder: recorder},
	}
}

func (h *StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, StepTransit, cmd.OrderID(), cmd.AgentID(),
		func(_ *order.Order, d *delivery.Delivery) error {
			return d.StartTransit()
		})
}
