package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/metrics"
)

// Hand-off steps as reported to metrics.
const (
	StepPickup   = "pickup"
	StepTransit  = "transit"
	StepDelivery = "delivery"
	StepCancel   = "cancel"
)

// handoffRunner loads an order and its delivery in one unit of work, lets a step change
// both and persists them. A cancelled delivery is deleted so the order can be claimed again.
type handoffRunner struct {
	uowFactory DeliveryUoWFactory
	recorder   *metrics.Recorder
}

type handoffStep func(o *order.Order, d *delivery.Delivery) error

func (r handoffRunner) run(
	ctx context.Context,
	step string,
	orderID, agentID kernel.UUID,
	apply handoffStep,
) error {
	err := r.runInUoW(ctx, orderID, agentID, apply)
	r.recorder.Handoff(step, handoffOutcome(err))
	return err
}

func (r handoffRunner) runInUoW(ctx context.Context, orderID, agentID kernel.UUID, apply handoffStep) error {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return notFoundAs(err, ErrOrderNotFound)
	}

	d, err := deliveryRepo.GetByOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.ErrAgentNotAuthorized
	}
	if err != nil {
		return err
	}
	if !d.AgentID().IsEqual(agentID) {
		return order.ErrAgentNotAuthorized
	}

	if err = apply(o, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if d.Status() == delivery.Cancelled {
		err = deliveryRepo.Delete(ctx, d.ID())
	} else {
		err = deliveryRepo.Update(ctx, d)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func handoffOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, order.ErrAgentNotAuthorized):
		return metrics.OutcomeUnauthorized
	case errors.Is(err, order.ErrInvalidHandoffCode):
		return metrics.OutcomeInvalidCode
	case errors.Is(err, errs.ErrInvalidTransition):
		return metrics.OutcomeInvalidState
	default:
		return metrics.OutcomeError
	}
}
