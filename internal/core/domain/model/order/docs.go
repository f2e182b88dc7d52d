// Package order provides the Order aggregate of the food delivery service.
//
// The package includes:
//   - Order: the aggregate root owning item and menu lines, the running total,
//     the delivery agent assignment and the hand-off codes
//   - Status: the order lifecycle, gated by a kernel.StateMachine
//   - HandoffCodes: the pickup token and confirmation code issued on claim
//   - StatusChangedEvent: recorded on every status change
//
// Key business rules:
//   - Lines can only change while the order is PENDING; afterwards the total is frozen
//   - An order is claimable only when READY, and by exactly one agent
//   - Pickup and delivery require the assigned agent and the matching single-use code
//   - Cancelling a hand-off returns the order to READY so another agent can claim it
package order
