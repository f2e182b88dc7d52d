package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCancelHandoffCommandIsNotConstructed = errors.New(
	"CancelHandoffCommand must be created via NewCancelHandoffCommand constructor",
)

// CancelHandoffCommand releases a claimed order. The reason is optional and travels
// with the status change event.
type CancelHandoffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelHandoffCommand(orderID, agentID kernel.UUID, reason string) (CancelHandoffCommand, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return CancelHandoffCommand{}, err
	}

	return CancelHandoffCommand{
		orderID: orderID,
		agentID: agentID,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelHandoffCommand) Validate() error {
	return c.guard.Validate(ErrCancelHandoffCommandIsNotConstructed)
}

func (c CancelHandoffCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelHandoffCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c CancelHandoffCommand) Reason() string {
	return c.reason
}
