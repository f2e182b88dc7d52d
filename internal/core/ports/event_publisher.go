package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events after the transaction that produced them committed.
// Delivery is at most once.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// QREncoder renders a payload as a PNG QR code.
type QREncoder interface {
	EncodePNG(payload string) ([]byte, error)
}
