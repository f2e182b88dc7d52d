package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand reports that the agent left the restaurant with the order.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartTransitCommand(orderID, agentID kernel.UUID) (StartTransitCommand, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return StartTransitCommand{}, err
	}

	return StartTransitCommand{
		orderID: orderID,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

func (c StartTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c StartTransitCommand) AgentID() kernel.UUID {
	return c.agentID
}
