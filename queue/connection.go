// See https://www.rabbitmq.com/tutorials/amqp-concepts
package queue

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Connection struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

// Dial opens a connection and a channel to the broker at uri.
func Dial(uri string) (*Connection, error) {
	return NewConnection(ConnectionConfig{URI: uri})
}

// NewConnection creates a new AMQP connection using the provided configuration.
func NewConnection(config ConnectionConfig) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("queue: invalid connection config: %w", err)
	}

	conn, err := amqp.Dial(config.URI)
	if err != nil {
		return nil, fmt.Errorf("queue: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("queue: open channel: %w", err)
	}

	return &Connection{Conn: conn, Ch: ch}, nil
}

// Close closes the channel, then the connection.
func (c *Connection) Close() error {
	var chErr error
	if c.Ch != nil && !c.Ch.IsClosed() {
		chErr = c.Ch.Close()
	}
	return errors.Join(chErr, c.Conn.Close())
}
