// Package rabbitmq publishes domain events to a RabbitMQ fanout exchange.
package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends events to a durable fanout exchange. The exchange is declared once,
// on the first publish.
type Publisher struct {
	channel  Channel
	exchange string

	declareOnce sync.Once
	declareErr  error
	mu          sync.Mutex
}

// Dial connects to url and opens the channel the publisher runs on.
func Dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return conn, ch, nil
}

func NewPublisher(channel Channel, exchange string) *Publisher {
	return &Publisher{channel: channel, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, evts ...kernel.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	p.declareOnce.Do(func() {
		p.declareErr = p.channel.ExchangeDeclare(p.exchange, amqp.ExchangeFanout, true, false, false, false, nil)
	})
	if p.declareErr != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", p.exchange, p.declareErr)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range evts {
		body, err := events.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", e.EventName(), err)
		}

		err = p.channel.PublishWithContext(ctx, p.exchange, e.EventName(), false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    e.EventID().String(),
			Type:         e.EventName(),
			Timestamp:    e.OccurredAt(),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("failed to publish %s: %w", e.EventName(), err)
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.channel.Close()
}
