package lib

import (
	"context"

	"github.com/octabyte/bm-rabbitmq-api/responses"
)

func (c *ManagementClient) ListConnections(ctx context.Context) ([]responses.Connection, error) {
	return fetch[[]responses.Connection](ctx, c, get("ListConnections", "/api/connections", nil))
}

func (c *ManagementClient) ListConnectionsIn(ctx context.Context, vhost string) ([]responses.Connection, error) {
	return fetch[[]responses.Connection](ctx, c, get("ListConnectionsIn", "/api/vhosts/{vhost}/connections", map[string]string{"vhost": vhost}))
}

func (c *ManagementClient) ListUserConnections(ctx context.Context, username string) ([]responses.UserConnection, error) {
	return fetch[[]responses.UserConnection](ctx, c, get("ListUserConnections", "/api/connections/username/{user}", map[string]string{"user": username}))
}

// CloseConnection closes a client connection. A non-empty reason is sent
// in the X-Reason header and shown to the client.
func (c *ManagementClient) CloseConnection(ctx context.Context, name, reason string) error {
	req := del("CloseConnection", "/api/connections/{name}", map[string]string{"name": name})
	if reason != "" {
		req.headers = map[string]string{"X-Reason": reason}
	}
	return c.send(ctx, req)
}

func (c *ManagementClient) ListChannels(ctx context.Context) ([]responses.Channel, error) {
	return fetch[[]responses.Channel](ctx, c, get("ListChannels", "/api/channels", nil))
}

func (c *ManagementClient) ListChannelsIn(ctx context.Context, vhost string) ([]responses.Channel, error) {
	return fetch[[]responses.Channel](ctx, c, get("ListChannelsIn", "/api/vhosts/{vhost}/channels", map[string]string{"vhost": vhost}))
}

func (c *ManagementClient) ListConsumers(ctx context.Context) ([]responses.Consumer, error) {
	return fetch[[]responses.Consumer](ctx, c, get("ListConsumers", "/api/consumers", nil))
}

func (c *ManagementClient) ListConsumersIn(ctx context.Context, vhost string) ([]responses.Consumer, error) {
	return fetch[[]responses.Consumer](ctx, c, get("ListConsumersIn", "/api/consumers/{vhost}", map[string]string{"vhost": vhost}))
}
