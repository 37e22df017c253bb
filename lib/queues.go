package lib

import (
	"context"

	"github.com/octabyte/bm-rabbitmq-api/requests"
	"github.com/octabyte/bm-rabbitmq-api/responses"
)

// defaultExchange is how the nameless default exchange is addressed in paths.
const defaultExchange = "amq.default"

func (c *ManagementClient) ListQueues(ctx context.Context) ([]responses.QueueInfo, error) {
	return fetch[[]responses.QueueInfo](ctx, c, get("ListQueues", "/api/queues", nil))
}

func (c *ManagementClient) ListQueuesIn(ctx context.Context, vhost string) ([]responses.QueueInfo, error) {
	return fetch[[]responses.QueueInfo](ctx, c, get("ListQueuesIn", "/api/queues/{vhost}", map[string]string{"vhost": vhost}))
}

func (c *ManagementClient) GetQueueInfo(ctx context.Context, vhost, name string) (responses.QueueInfo, error) {
	return fetch[responses.QueueInfo](ctx, c, get("GetQueueInfo", "/api/queues/{vhost}/{name}", map[string]string{"vhost": vhost, "name": name}))
}

// DeclareQueue declares a queue. Redeclaring with different properties
// fails on the server with 400.
func (c *ManagementClient) DeclareQueue(ctx context.Context, vhost string, params requests.QueueParams) error {
	return c.send(ctx, put("DeclareQueue", "/api/queues/{vhost}/{name}", map[string]string{"vhost": vhost, "name": params.Name}, params))
}

func (c *ManagementClient) DeleteQueue(ctx context.Context, vhost, name string) error {
	return c.send(ctx, del("DeleteQueue", "/api/queues/{vhost}/{name}", map[string]string{"vhost": vhost, "name": name}))
}

// PurgeQueue removes all ready messages from a queue.
func (c *ManagementClient) PurgeQueue(ctx context.Context, vhost, name string) error {
	return c.send(ctx, del("PurgeQueue", "/api/queues/{vhost}/{name}/contents", map[string]string{"vhost": vhost, "name": name}))
}

func (c *ManagementClient) ListExchanges(ctx context.Context) ([]responses.ExchangeInfo, error) {
	return fetch[[]responses.ExchangeInfo](ctx, c, get("ListExchanges", "/api/exchanges", nil))
}

func (c *ManagementClient) ListExchangesIn(ctx context.Context, vhost string) ([]responses.ExchangeInfo, error) {
	return fetch[[]responses.ExchangeInfo](ctx, c, get("ListExchangesIn", "/api/exchanges/{vhost}", map[string]string{"vhost": vhost}))
}

func (c *ManagementClient) DeclareExchange(ctx context.Context, vhost string, params requests.ExchangeParams) error {
	return c.send(ctx, put("DeclareExchange", "/api/exchanges/{vhost}/{name}", map[string]string{"vhost": vhost, "name": params.Name}, params))
}

func (c *ManagementClient) DeleteExchange(ctx context.Context, vhost, name string) error {
	return c.send(ctx, del("DeleteExchange", "/api/exchanges/{vhost}/{name}", map[string]string{"vhost": vhost, "name": name}))
}

func (c *ManagementClient) ListBindings(ctx context.Context) ([]responses.BindingInfo, error) {
	return fetch[[]responses.BindingInfo](ctx, c, get("ListBindings", "/api/bindings", nil))
}

func (c *ManagementClient) ListBindingsIn(ctx context.Context, vhost string) ([]responses.BindingInfo, error) {
	return fetch[[]responses.BindingInfo](ctx, c, get("ListBindingsIn", "/api/bindings/{vhost}", map[string]string{"vhost": vhost}))
}

func (c *ManagementClient) ListQueueBindings(ctx context.Context, vhost, queue string) ([]responses.BindingInfo, error) {
	return fetch[[]responses.BindingInfo](ctx, c, get("ListQueueBindings", "/api/queues/{vhost}/{name}/bindings", map[string]string{"vhost": vhost, "name": queue}))
}

// Bind binds params.Source to a queue or exchange, per params.DestinationType.
func (c *ManagementClient) Bind(ctx context.Context, params requests.BindingParams) error {
	return c.send(ctx, post("Bind", "/api/bindings/{vhost}/e/{source}/{kind}/{destination}",
		map[string]string{
			"vhost":       params.VHost,
			"source":      params.Source,
			"kind":        params.DestinationType.PathAbbreviation(),
			"destination": params.Destination,
		},
		params,
	))
}

// Unbind deletes a binding as listed by the API. Bindings without a
// properties key are addressed by routing key, or "~" when that is empty.
func (c *ManagementClient) Unbind(ctx context.Context, binding responses.BindingInfo) error {
	props := binding.RoutingKey
	switch {
	case binding.PropertiesKey != nil:
		props = *binding.PropertiesKey
	case props == "":
		props = "~"
	}

	return c.send(ctx, del("Unbind", "/api/bindings/{vhost}/e/{source}/{kind}/{destination}/{props}",
		map[string]string{
			"vhost":       binding.VHost,
			"source":      binding.Source,
			"kind":        binding.DestinationType.PathAbbreviation(),
			"destination": binding.Destination,
			"props":       props,
		},
	))
}

// PublishMessage publishes through the API. An empty exchange name means the
// default exchange.
func (c *ManagementClient) PublishMessage(ctx context.Context, vhost, exchange string, params requests.PublishMessageParams) (responses.MessageRouted, error) {
	if exchange == "" {
		exchange = defaultExchange
	}
	return fetch[responses.MessageRouted](ctx, c, post("PublishMessage", "/api/exchanges/{vhost}/{name}/publish",
		map[string]string{"vhost": vhost, "name": exchange},
		params,
	))
}

// GetMessages fetches messages from a queue. Depending on params.AckMode the
// messages are requeued or removed.
func (c *ManagementClient) GetMessages(ctx context.Context, vhost, queue string, params requests.GetMessagesParams) (responses.MessageList, error) {
	return fetch[responses.MessageList](ctx, c, post("GetMessages", "/api/queues/{vhost}/{name}/get",
		map[string]string{"vhost": vhost, "name": queue},
		params,
	))
}
