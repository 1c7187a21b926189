package events

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var errNotConfirmed = errors.New("message not confirmed")

// confirmation is the broker's answer for one message.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publishFunc func(ctx context.Context, queueName string, msg amqp.Publishing) (confirmation, error)

type rabbitMQPublisher struct {
	ch        *amqp.Channel
	queueName string
	publish   publishFunc
	log       *zap.Logger
}

// NewRabbitMQPublisher declares the durable schedule_changed queue and
// enables publisher confirms on a dedicated channel. Every message carries its
// own deferred confirmation, so a publish that gives up waiting never leaves
// an ack behind for the next one.
func NewRabbitMQPublisher(conn *amqp.Connection, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.QueueScheduleChanged, // name
		true,                           // durable
		false,                          // autoDelete
		false,                          // exclusive
		false,                          // noWait
		nil,                            // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	publisher := newRabbitMQPublisher(constvars.QueueScheduleChanged, logger, func(ctx context.Context, queueName string, msg amqp.Publishing) (confirmation, error) {
		deferred, err := ch.PublishWithDeferredConfirmWithContext(ctx, "", queueName, false, false, msg)
		if err != nil {
			return nil, err
		}
		return deferred, nil
	})
	publisher.ch = ch
	return publisher, nil
}

func newRabbitMQPublisher(queueName string, logger *zap.Logger, publish publishFunc) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		queueName: queueName,
		publish:   publish,
		log:       logger,
	}
}

func (p *rabbitMQPublisher) PublishScheduleChanged(ctx context.Context, event models.ScheduleChanged) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    requestID,
		Timestamp:    time.Now().UTC(),
		Type:         string(event.Kind) + "." + string(event.Action),
		Body:         body,
	}
	confirm, err := p.publish(ctx, p.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errNotConfirmed, p.queueName)
	}

	p.log.Info("rabbitMQPublisher.PublishScheduleChanged succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.queueName),
		zap.String(constvars.LoggingKindKey, string(event.Kind)),
		zap.String(constvars.LoggingActionKey, string(event.Action)),
		zap.String(constvars.LoggingRecordIDKey, event.ID),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	if p.ch == nil {
		return nil
	}
	return p.ch.Close()
}
