package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand carries the confirmation code the customer gave the agent.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	agentID          kernel.UUID
	confirmationCode string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderID, agentID kernel.UUID, confirmationCode string) (ConfirmDeliveryCommand, error) {
	confirmationCode = strings.TrimSpace(confirmationCode)

	var codeErr error
	if confirmationCode == "" {
		codeErr = errs.NewValueIsRequiredError("confirmationCode")
	}
	if err := errors.Join(orderID.Validate(), agentID.Validate(), codeErr); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		orderID:          orderID,
		agentID:          agentID,
		confirmationCode: confirmationCode,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c ConfirmDeliveryCommand) ConfirmationCode() string {
	return c.confirmationCode
}
