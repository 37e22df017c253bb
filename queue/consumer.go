package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumeChannel is the subset of *amqp.Channel needed to start a consumer.
type ConsumeChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Consume starts delivering messages from queueName on the connection's channel.
func (c *Connection) Consume(queueName string, autoAck bool) (<-chan amqp.Delivery, error) {
	return Consume(c.Ch, queueName, autoAck)
}

// Consume starts a non-exclusive consumer on ch with a server-generated tag.
func Consume(ch ConsumeChannel, queueName string, autoAck bool) (<-chan amqp.Delivery, error) {
	deliveries, err := ch.Consume(
		queueName,
		"",
		autoAck,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("queue: consume %q: %w", queueName, err)
	}
	return deliveries, nil
}
