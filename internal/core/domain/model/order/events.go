package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

const StatusChangedEventName = "order.status_changed"

// StatusChangedEvent is recorded on every order status change. Fields are exported
// because event publishers serialize it as JSON.
type StatusChangedEvent struct {
	ID           string    `json:"eventId"`
	OrderID      string    `json:"orderId"`
	RestaurantID string    `json:"restaurantId"`
	CustomerID   string    `json:"customerId"`
	AgentID      string    `json:"agentId,omitempty"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Reason       string    `json:"reason,omitempty"`
	At           time.Time `json:"occurredAt"`

	eventID     kernel.UUID
	aggregateID kernel.UUID
}

func (e StatusChangedEvent) EventID() kernel.UUID {
	return e.eventID
}

func (e StatusChangedEvent) EventName() string {
	return StatusChangedEventName
}

func (e StatusChangedEvent) AggregateID() kernel.UUID {
	return e.aggregateID
}

func (e StatusChangedEvent) OccurredAt() time.Time {
	return e.At
}

func newStatusChangedEvent(o *Order, from, to Status, reason string, at time.Time) StatusChangedEvent {
	id := kernel.NewUUID()
	event := StatusChangedEvent{
		ID:           id.String(),
		OrderID:      o.id.String(),
		RestaurantID: o.restaurantID.String(),
		CustomerID:   o.customerID.String(),
		From:         from.String(),
		To:           to.String(),
		Reason:       reason,
		At:           at.UTC(),
		eventID:      id,
		aggregateID:  o.id,
	}
	if o.agentID != nil {
		event.AgentID = o.agentID.String()
	}
	return event
}
