package contracts

import "context"

// EventPublisher announces committed changes. Delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
	Close() error
}
