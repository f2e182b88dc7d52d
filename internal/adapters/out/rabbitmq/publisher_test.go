package rabbitmq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/rabbitmq"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool,
	msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func readyEvents(t *testing.T) []kernel.DomainEvent {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, o.Advance(order.Confirmed, time.Now()))
	return o.PullEvents()
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("should declare the exchange once and publish persistent json", func(t *testing.T) {
		// Given
		ch := new(MockChannel)
		publisher := rabbitmq.NewPublisher(ch, "order_events")
		evts := readyEvents(t)

		ch.On("ExchangeDeclare", "order_events", "fanout", true, false, false, false, amqp.Table(nil)).
			Return(nil).Once()
		ch.On("PublishWithContext", mock.Anything, "order_events", order.StatusChangedEventName, false, false,
			mock.MatchedBy(func(msg amqp.Publishing) bool {
				return msg.ContentType == "application/json" &&
					msg.DeliveryMode == amqp.Persistent &&
					msg.MessageId == evts[0].EventID().String()
			})).Return(nil).Twice()

		// When
		require.NoError(t, publisher.Publish(t.Context(), evts...))
		require.NoError(t, publisher.Publish(t.Context(), evts...))

		// Then
		ch.AssertExpectations(t)
	})

	t.Run("should report a failed exchange declaration", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything).Return(errors.New("access refused")).Once()

		err := rabbitmq.NewPublisher(ch, "order_events").Publish(t.Context(), readyEvents(t)...)

		require.ErrorContains(t, err, "access refused")
		ch.AssertNotCalled(t, "PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything)
	})

	t.Run("should report publish failures", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything).Return(nil)
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything).Return(amqp.ErrClosed)

		err := rabbitmq.NewPublisher(ch, "order_events").Publish(t.Context(), readyEvents(t)...)

		assert.ErrorIs(t, err, amqp.ErrClosed)
	})
}
