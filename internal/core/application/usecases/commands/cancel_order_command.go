package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order before the kitchen starts on it. The customer or
// the restaurant's manager may cancel.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, requesterID kernel.UUID, reason string) (CancelOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:     orderID,
		requesterID: requesterID,
		reason:      strings.TrimSpace(reason),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}
