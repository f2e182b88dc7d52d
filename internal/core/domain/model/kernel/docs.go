// Package kernel provides the shared domain primitives of the food delivery service.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate
//   - Location: a validated latitude/longitude pair
//   - StateMachine: a transition table that gates status changes of orders and deliveries
//   - Role: the caller roles resolved by the user directory
//   - DomainEvent: the contract for events recorded by aggregates and published after commit
//
// Values in this package are immutable and safe for concurrent use.
package kernel
