package queue

import (
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/octabyte/bm-rabbitmq-api/enums"
	"github.com/octabyte/bm-rabbitmq-api/requests"
	"github.com/octabyte/bm-rabbitmq-api/responses"
	"github.com/octabyte/bm-rabbitmq-api/utils/logger"
)

// Declarer is the subset of *amqp.Channel used to declare topology.
type Declarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	ExchangeBind(destination, key, source string, noWait bool, args amqp.Table) error
}

// DeclareQueue declares a queue from the same parameters the management
// client sends. x-queue-type travels in the arguments table.
func DeclareQueue(d Declarer, params requests.QueueParams) (amqp.Queue, error) {
	q, err := d.QueueDeclare(
		params.Name,
		params.Durable,
		params.AutoDelete,
		params.Exclusive,
		false,
		params.Arguments.Table(),
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("queue: declare queue %q: %w", params.Name, err)
	}

	logger.LogDebug("queue declared",
		zap.String("queue", params.Name),
		zap.String("type", params.Type.String()),
	)
	return q, nil
}

func DeclareExchange(d Declarer, params requests.ExchangeParams) error {
	if err := d.ExchangeDeclare(
		params.Name,
		params.Type.String(),
		params.Durable,
		params.AutoDelete,
		false,
		false,
		params.Arguments.Table(),
	); err != nil {
		return fmt.Errorf("queue: declare exchange %q: %w", params.Name, err)
	}

	logger.LogDebug("exchange declared",
		zap.String("exchange", params.Name),
		zap.String("type", params.Type.String()),
	)
	return nil
}

// Bind binds params.Source to a queue or an exchange depending on
// params.DestinationType. The virtual host is the one the connection uses.
func Bind(d Declarer, params requests.BindingParams) error {
	args := params.Arguments.Table()

	var err error
	switch params.DestinationType {
	case enums.BindingDestinationTypeExchange:
		err = d.ExchangeBind(params.Destination, params.RoutingKey, params.Source, false, args)
	default:
		err = d.QueueBind(params.Destination, params.RoutingKey, params.Source, false, args)
	}
	if err != nil {
		return fmt.Errorf("queue: bind %q to %s %q: %w", params.Source, params.DestinationType, params.Destination, err)
	}

	logger.LogDebug("binding declared",
		zap.String("source", params.Source),
		zap.String("destination", params.Destination),
		zap.String("destination_type", params.DestinationType.String()),
		zap.String("routing_key", params.RoutingKey),
	)
	return nil
}

// Topology is a set of declarations applied in order: exchanges, queues, bindings.
type Topology struct {
	Exchanges []requests.ExchangeParams
	Queues    []requests.QueueParams
	Bindings  []requests.BindingParams
}

// TopologyFromDefinitions extracts the exchanges, queues and bindings of
// vhost from an exported definition set. Exchanges owned by the server
// (the default exchange and amq.*) and bindings from the default exchange
// are skipped since the broker refuses to redeclare them.
func TopologyFromDefinitions(defs responses.DefinitionSet, vhost string) Topology {
	var topology Topology

	for _, x := range defs.ExchangesIn(vhost) {
		if isServerOwnedExchange(x.Name) {
			continue
		}
		topology.Exchanges = append(topology.Exchanges,
			requests.NewExchangeParams(x.Name, x.ExchangeType, x.Durable, x.AutoDelete, requests.XArguments(x.Arguments)))
	}

	for _, q := range defs.QueuesIn(vhost) {
		queueType, _ := q.Arguments[requests.QueueTypeArgument].(string)
		topology.Queues = append(topology.Queues,
			requests.NewQueueParams(q.Name, enums.ParseQueueType(queueType), q.Durable, q.AutoDelete, false, requests.XArguments(q.Arguments)))
	}

	for _, b := range defs.BindingsIn(vhost) {
		if b.Source == "" {
			continue
		}
		topology.Bindings = append(topology.Bindings, requests.BindingParams{
			VHost:           b.VHost,
			Source:          b.Source,
			Destination:     b.Destination,
			DestinationType: b.DestinationType,
			RoutingKey:      b.RoutingKey,
			Arguments:       requests.XArguments(b.Arguments),
		})
	}

	return topology
}

func isServerOwnedExchange(name string) bool {
	return name == "" || strings.HasPrefix(name, "amq.")
}

// Apply declares every element of t, stopping at the first failure.
func Apply(d Declarer, t Topology) error {
	for _, x := range t.Exchanges {
		if err := DeclareExchange(d, x); err != nil {
			return err
		}
	}
	for _, q := range t.Queues {
		if _, err := DeclareQueue(d, q); err != nil {
			return err
		}
	}
	for _, b := range t.Bindings {
		if err := Bind(d, b); err != nil {
			return err
		}
	}

	logger.LogInfo("topology applied",
		zap.Int("exchanges", len(t.Exchanges)),
		zap.Int("queues", len(t.Queues)),
		zap.Int("bindings", len(t.Bindings)),
	)
	return nil
}
