package messaging

import (
	"clinic-service/internal/app/config"
	"strconv"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker. A failure is returned rather than fatal since
// domain events are best effort.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) (*amqp091.Connection, error) {
	port, err := strconv.Atoi(driverConfig.RabbitMQ.Port)
	if err != nil {
		return nil, err
	}
	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    "/",
	}

	conn, err := amqp091.DialConfig(uri.String(), amqp091.Config{
		Properties: amqp091.Table{"connection_name": "clinic-service"},
	})
	if err != nil {
		return nil, err
	}
	log.Info("Successfully connected to rabbitMQ", zap.String("host", uri.Host), zap.Int("port", uri.Port))
	return conn, nil
}
