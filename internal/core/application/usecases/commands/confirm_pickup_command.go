package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand carries the pickup token the agent scanned at the restaurant.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	agentID     kernel.UUID
	pickupToken string

	guard guard.ConstructorGuard
}

func NewConfirmPickupCommand(orderID, agentID kernel.UUID, pickupToken string) (ConfirmPickupCommand, error) {
	pickupToken = strings.TrimSpace(pickupToken)

	var tokenErr error
	if pickupToken == "" {
		tokenErr = errs.NewValueIsRequiredError("pickupToken")
	}
	if err := errors.Join(orderID.Validate(), agentID.Validate(), tokenErr); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return ConfirmPickupCommand{
		orderID:     orderID,
		agentID:     agentID,
		pickupToken: pickupToken,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmPickupCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c ConfirmPickupCommand) PickupToken() string {
	return c.pickupToken
}
