// Package kafka publishes domain events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"

	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

const eventNameHeader = "event-name"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes each event as one message keyed by the aggregate id, so all events
// of an order land on the same partition in order.
type Publisher struct {
	writer messageWriter
}

// NewWriter builds the writer Publisher expects for topic.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, evts ...kernel.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, e := range evts {
		payload, err := events.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.EventName(), err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(e.AggregateID().String()),
			Value:   payload,
			Headers: []kafka.Header{{Key: eventNameHeader, Value: []byte(e.EventName())}},
			Time:    e.OccurredAt(),
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events to kafka: %w", len(msgs), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
