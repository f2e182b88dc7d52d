package kernel

import (
	"slices"

	"fooddelivery/internal/pkg/errs"
)

// Status is the constraint satisfied by the lifecycle enums of orders and deliveries.
type Status interface {
	comparable
	String() string
}

// StateMachine is an immutable transition table for one entity kind.
// Every status change in the domain goes through AssertTransition before any field is written,
// so a rejected transition never leaves a partially updated aggregate behind.
//
// Example:
//
//	machine := kernel.NewStateMachine("order", map[Status][]Status{
//	    Pending:   {Confirmed, Cancelled},
//	    Confirmed: {Preparing, Cancelled},
//	})
//	if err := machine.AssertTransition(current, Confirmed); err != nil {
//	    return err // errors.Is(err, errs.ErrInvalidTransition)
//	}
type StateMachine[S Status] struct {
	entity string
	edges  map[S][]S
}

// NewStateMachine copies edges so later changes to the caller's map have no effect.
func NewStateMachine[S Status](entity string, edges map[S][]S) StateMachine[S] {
	copied := make(map[S][]S, len(edges))
	for from, targets := range edges {
		copied[from] = slices.Clone(targets)
	}

	return StateMachine[S]{
		entity: entity,
		edges:  copied,
	}
}

// Entity names the lifecycle the table belongs to.
func (m StateMachine[S]) Entity() string {
	return m.entity
}

// CanTransition reports whether (from, to) is an edge of the table.
func (m StateMachine[S]) CanTransition(from, to S) bool {
	return slices.Contains(m.edges[from], to)
}

// AssertTransition returns an *errs.InvalidTransitionError when (from, to) is not an edge.
func (m StateMachine[S]) AssertTransition(from, to S) error {
	if !m.CanTransition(from, to) {
		return errs.NewInvalidTransitionError(m.entity, from.String(), to.String())
	}
	return nil
}

// Targets lists the statuses reachable from one step away, in table order.
func (m StateMachine[S]) Targets(from S) []S {
	return slices.Clone(m.edges[from])
}

// IsTerminal reports whether no transition leaves the status.
func (m StateMachine[S]) IsTerminal(s S) bool {
	return len(m.edges[s]) == 0
}
