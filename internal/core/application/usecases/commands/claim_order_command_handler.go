package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/metrics"
)

// HandoffCodeIssuer issues the pickup token and confirmation code for a claim.
type HandoffCodeIssuer interface {
	Issue() (order.HandoffCodes, error)
}

// ClaimOrderResult is what the claiming agent gets back. Hand-off codes are not part of it:
// the restaurant shows the pickup token and the customer holds the confirmation code.
type ClaimOrderResult struct {
	DeliveryID kernel.UUID
	Status     delivery.Status
}

// ClaimOrderCommandHandler assigns a READY order to exactly one delivery agent.
//
// The order is re-read inside the transaction and the delivery insert is guarded by the
// unique index on deliveries.order_id, so of N concurrent claims one commits and the
// others fail with order.ErrAlreadyClaimed.
type ClaimOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	users      ports.UserDirectory
	issuer     HandoffCodeIssuer
	clock      services.Clock
	recorder   *metrics.Recorder
}

func NewClaimOrderCommandHandler(
	uowFactory DeliveryUoWFactory,
	users ports.UserDirectory,
	issuer HandoffCodeIssuer,
	clock services.Clock,
	recorder *metrics.Recorder,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		issuer:     issuer,
		clock:      clock,
		recorder:   recorder,
	}
}

func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (ClaimOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ClaimOrderResult{}, err
	}

	result, err := h.claim(ctx, cmd)
	h.recorder.Claim(claimOutcome(err))
	return result, err
}

func (h *ClaimOrderCommandHandler) claim(ctx context.Context, cmd ClaimOrderCommand) (ClaimOrderResult, error) {
	agent, err := h.users.Get(ctx, cmd.AgentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ClaimOrderResult{}, order.ErrAgentNotAuthorized
	}
	if err != nil {
		return ClaimOrderResult{}, err
	}
	if agent.Role != kernel.RoleDeliveryDriver {
		return ClaimOrderResult{}, order.ErrAgentNotAuthorized
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ClaimOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ClaimOrderResult{}, notFoundAs(err, ErrOrderNotFound)
	}
	if o.Status().IsClaimed() {
		return ClaimOrderResult{}, order.ErrAlreadyClaimed
	}

	_, err = deliveryRepo.GetByOrderID(ctx, o.ID())
	switch {
	case err == nil:
		return ClaimOrderResult{}, order.ErrAlreadyClaimed
	case !errors.Is(err, errs.ErrObjectNotFound):
		return ClaimOrderResult{}, err
	}

	codes, err := h.issuer.Issue()
	if err != nil {
		return ClaimOrderResult{}, err
	}
	now := h.clock.Now()
	if err = o.Claim(cmd.AgentID(), codes, now); err != nil {
		return ClaimOrderResult{}, err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), cmd.AgentID(), now)
	if err != nil {
		return ClaimOrderResult{}, err
	}
	if err = d.Accept(); err != nil {
		return ClaimOrderResult{}, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ClaimOrderResult{}, fmt.Errorf("%w: %w", order.ErrAlreadyClaimed, err)
		}
		return ClaimOrderResult{}, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return ClaimOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ClaimOrderResult{}, err
	}

	return ClaimOrderResult{DeliveryID: d.ID(), Status: d.Status()}, nil
}

func claimOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, order.ErrAlreadyClaimed):
		return metrics.OutcomeAlreadyClaimed
	case errors.Is(err, order.ErrOrderNotClaimable):
		return metrics.OutcomeNotClaimable
	case errors.Is(err, order.ErrAgentNotAuthorized):
		return metrics.OutcomeUnauthorized
	default:
		return metrics.OutcomeError
	}
}
