package kernel

import "time"

// DomainEvent is recorded by an aggregate while it changes and published once the
// surrounding unit of work has committed.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventRecorder is implemented by aggregates that record domain events.
// PullEvents hands the pending events over and clears them.
type EventRecorder interface {
	PullEvents() []DomainEvent
}
