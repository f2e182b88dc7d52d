package events

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

// Fanout hands every batch to all publishers. One failing publisher does not stop the others.
type Fanout struct {
	publishers []ports.EventPublisher
}

// NewFanout skips nil publishers, so optional brokers can be passed as is.
func NewFanout(publishers ...ports.EventPublisher) *Fanout {
	kept := make([]ports.EventPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return &Fanout{publishers: kept}
}

func (f *Fanout) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
