package order

import "errors"

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotEditable is returned when lines or the total change outside PENDING.
	ErrOrderNotEditable = errors.New("order is not editable")

	// ErrOrderNotClaimable is returned when a claim targets an order that is not READY.
	ErrOrderNotClaimable = errors.New("order is not claimable")

	// ErrAlreadyClaimed is returned when another agent holds the order.
	ErrAlreadyClaimed = errors.New("order is already claimed")

	// ErrAgentNotAuthorized is returned when the caller is not the assigned delivery agent.
	ErrAgentNotAuthorized = errors.New("agent is not authorized for this order")

	// ErrInvalidHandoffCode is returned when a pickup token or confirmation code does not match.
	ErrInvalidHandoffCode = errors.New("invalid hand-off code")

	ErrMenuAlreadyInOrder  = errors.New("menu already added to order")
	ErrForeignCatalogEntry = errors.New("catalog entry belongs to another restaurant")
)
