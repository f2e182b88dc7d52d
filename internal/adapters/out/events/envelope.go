// Package events holds what the outbound event adapters share: the JSON envelope
// every domain event travels in, and a fan-out publisher.
package events

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Envelope wraps a domain event for the wire.
type Envelope struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AggregateID string          `json:"aggregateId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}

// Wrap serializes event into an envelope.
func Wrap(event kernel.DomainEvent) (Envelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		ID:          event.EventID().String(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID().String(),
		OccurredAt:  event.OccurredAt().UTC(),
		Payload:     payload,
	}, nil
}

// Marshal wraps event and encodes the envelope.
func Marshal(event kernel.DomainEvent) ([]byte, error) {
	envelope, err := Wrap(event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope)
}
