package publisher

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var errMessageNotConfirmed = errors.New("message not confirmed")

// EventMessage is the envelope every domain event is published in.
type EventMessage struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Source     string      `json:"source"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

type rabbitMQPublisher struct {
	ch       *amqp.Channel
	exchange string
	source   string
	Log      *zap.Logger
}

// NewRabbitMQPublisher declares a durable topic exchange and enables publisher
// confirms on a dedicated channel.
func NewRabbitMQPublisher(conn *amqp.Connection, exchange, source string, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	err = ch.Confirm(false)
	if err != nil {
		ch.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:       ch,
		exchange: exchange,
		source:   source,
		Log:      logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventExchangeKey, p.exchange),
		zap.String(constvars.LoggingEventRoutingKey, routingKey),
	)

	body, err := json.Marshal(EventMessage{
		ID:         uuid.NewString(),
		Type:       routingKey,
		Source:     p.source,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		CorrelationId: requestID,
		Timestamp:     time.Now().UTC(),
	}

	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errMessageNotConfirmed, p.exchange)
	}

	p.Log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventRoutingKey, routingKey),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.ch.Close()
}
