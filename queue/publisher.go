package queue

import (
	"context"
	"encoding/base64"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/octabyte/bm-rabbitmq-api/requests"
)

// PublishChannel is the subset of *amqp.Channel a Publisher needs.
type PublishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher interface {
	Publish(ctx context.Context, exchange string, params requests.PublishMessageParams) error
	Close() error
}

type publisher struct {
	ch PublishChannel
}

// NewPublisher publishes the same message parameters the management API
// accepts, but over AMQP.
func NewPublisher(ch PublishChannel) Publisher {
	return &publisher{ch}
}

func (p *publisher) Publish(ctx context.Context, exchange string, params requests.PublishMessageParams) error {
	message, err := toPublishing(params)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		exchange,
		params.RoutingKey,
		false, // mandatory
		false, // immediate
		message,
	)
}

func (p *publisher) Close() error {
	return p.ch.Close()
}

func toPublishing(params requests.PublishMessageParams) (amqp.Publishing, error) {
	var msg amqp.Publishing

	switch params.PayloadEncoding {
	case requests.PayloadEncodingBase64:
		body, err := base64.StdEncoding.DecodeString(params.Payload)
		if err != nil {
			return msg, fmt.Errorf("queue: decode base64 payload: %w", err)
		}
		msg.Body = body
	default:
		msg.Body = []byte(params.Payload)
	}

	props := params.Properties
	msg.ContentType = stringProperty(props, "content_type")
	msg.ContentEncoding = stringProperty(props, "content_encoding")
	msg.CorrelationId = stringProperty(props, "correlation_id")
	msg.ReplyTo = stringProperty(props, "reply_to")
	msg.Expiration = stringProperty(props, "expiration")
	msg.MessageId = stringProperty(props, "message_id")
	msg.Type = stringProperty(props, "type")
	msg.UserId = stringProperty(props, "user_id")
	msg.AppId = stringProperty(props, "app_id")
	msg.DeliveryMode = uint8Property(props, "delivery_mode")
	msg.Priority = uint8Property(props, "priority")

	msg.Headers = headersProperty(props)
	return msg, nil
}

// headersProperty accepts headers built in Go as well as the plain map
// produced when the properties were decoded from JSON.
func headersProperty(props requests.MessageProperties) amqp.Table {
	switch headers := props["headers"].(type) {
	case map[string]interface{}:
		return requests.XArguments(headers).Table()
	case requests.XArguments:
		return headers.Table()
	case amqp.Table:
		return requests.XArguments(headers).Table()
	default:
		return nil
	}
}

func stringProperty(props requests.MessageProperties, key string) string {
	s, _ := props[key].(string)
	return s
}

// uint8Property accepts Go integers as well as the float64 produced when the
// properties were decoded from JSON.
func uint8Property(props requests.MessageProperties, key string) uint8 {
	switch v := props[key].(type) {
	case int:
		return uint8(v)
	case int64:
		return uint8(v)
	case uint8:
		return v
	case float64:
		return uint8(v)
	default:
		return 0
	}
}
