package events

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// brokerConfirm answers once the broker has settled the message. A nil acked
// channel never settles.
type brokerConfirm struct {
	acked chan bool
}

func (c *brokerConfirm) WaitContext(ctx context.Context) (bool, error) {
	select {
	case acked := <-c.acked:
		return acked, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func settled(acked bool) *brokerConfirm {
	ch := make(chan bool, 1)
	ch <- acked
	return &brokerConfirm{acked: ch}
}

type fakeChannel struct {
	sent     []amqp.Publishing
	confirms []*brokerConfirm
	err      error
}

func (f *fakeChannel) publish(ctx context.Context, queueName string, msg amqp.Publishing) (confirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	confirm := f.confirms[len(f.sent)]
	f.sent = append(f.sent, msg)
	return confirm, nil
}

func scheduleEvent(id string) models.ScheduleChanged {
	return models.ScheduleChanged{
		Kind:       models.ChangeKindAppointment,
		Action:     models.ChangeActionCreate,
		ID:         id,
		UserID:     "user-1",
		OccurredAt: time.Date(2025, time.June, 27, 9, 0, 0, 0, time.UTC),
	}
}

func TestRabbitMQPublisher_PublishScheduleChanged(t *testing.T) {
	t.Run("acked message", func(t *testing.T) {
		channel := &fakeChannel{confirms: []*brokerConfirm{settled(true)}}
		publisher := newRabbitMQPublisher(constvars.QueueScheduleChanged, zap.NewNop(), channel.publish)

		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
		require.NoError(t, publisher.PublishScheduleChanged(ctx, scheduleEvent("12")))

		require.Len(t, channel.sent, 1)
		msg := channel.sent[0]
		assert.Equal(t, "req-1", msg.MessageId)
		assert.Equal(t, "appointment.create", msg.Type)
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

		var decoded models.ScheduleChanged
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, "12", decoded.ID)
	})

	t.Run("nacked message", func(t *testing.T) {
		channel := &fakeChannel{confirms: []*brokerConfirm{settled(false)}}
		publisher := newRabbitMQPublisher(constvars.QueueScheduleChanged, zap.NewNop(), channel.publish)

		err := publisher.PublishScheduleChanged(context.Background(), scheduleEvent("12"))
		assert.True(t, errors.Is(err, errNotConfirmed))
	})

	t.Run("late confirm is not taken by the next message", func(t *testing.T) {
		late := &brokerConfirm{acked: make(chan bool, 1)}
		channel := &fakeChannel{confirms: []*brokerConfirm{late, settled(false), settled(true)}}
		publisher := newRabbitMQPublisher(constvars.QueueScheduleChanged, zap.NewNop(), channel.publish)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := publisher.PublishScheduleChanged(ctx, scheduleEvent("1"))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))

		// The broker acks the first message after its caller gave up.
		late.acked <- true

		err = publisher.PublishScheduleChanged(context.Background(), scheduleEvent("2"))
		assert.True(t, errors.Is(err, errNotConfirmed), "second message reports its own nack")

		assert.NoError(t, publisher.PublishScheduleChanged(context.Background(), scheduleEvent("3")))
		assert.Len(t, channel.sent, 3)
	})

	t.Run("publish error", func(t *testing.T) {
		channel := &fakeChannel{err: amqp.ErrClosed}
		publisher := newRabbitMQPublisher(constvars.QueueScheduleChanged, zap.NewNop(), channel.publish)

		err := publisher.PublishScheduleChanged(context.Background(), scheduleEvent("1"))
		assert.True(t, errors.Is(err, amqp.ErrClosed))
		assert.NoError(t, publisher.Close())
	})
}
