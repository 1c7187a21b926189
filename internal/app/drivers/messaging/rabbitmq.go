package messaging

import (
	"clinicbook-service/internal/app/config"
	"fmt"
	"net/url"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker. Unlike redis a failure is returned, events
// are optional and the caller falls back to a no-op publisher.
func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		url.QueryEscape(driverConfig.RabbitMQ.Username),
		url.QueryEscape(driverConfig.RabbitMQ.Password),
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	return conn, nil
}
