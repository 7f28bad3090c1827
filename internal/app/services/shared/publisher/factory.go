package publisher

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/drivers/messaging"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewEventPublisher connects to RabbitMQ when events are enabled and falls back
// to a no-op publisher otherwise. The returned connection is nil in that case.
func NewEventPublisher(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, source string, log *zap.Logger) (contracts.EventPublisher, *amqp.Connection) {
	if !internalConfig.Events.Enabled {
		return NewNoopPublisher(log), nil
	}

	conn, err := messaging.NewRabbitMQ(driverConfig, log)
	if err != nil {
		log.Warn("RabbitMQ unreachable, domain events disabled", zap.Error(err))
		return NewNoopPublisher(log), nil
	}

	eventPublisher, err := NewRabbitMQPublisher(conn, internalConfig.Events.Exchange, source, log)
	if err != nil {
		log.Warn("Failed to open RabbitMQ channel, domain events disabled", zap.Error(err))
		conn.Close()
		return NewNoopPublisher(log), nil
	}
	return eventPublisher, conn
}
