package lib

import (
	"context"

	"github.com/octabyte/bm-rabbitmq-api/enums"
	"github.com/octabyte/bm-rabbitmq-api/requests"
	"github.com/octabyte/bm-rabbitmq-api/responses"
)

func (c *ManagementClient) ListVirtualHosts(ctx context.Context) ([]responses.VirtualHost, error) {
	return fetch[[]responses.VirtualHost](ctx, c, get("ListVirtualHosts", "/api/vhosts", nil))
}

func (c *ManagementClient) GetVirtualHost(ctx context.Context, name string) (responses.VirtualHost, error) {
	return fetch[responses.VirtualHost](ctx, c, get("GetVirtualHost", "/api/vhosts/{vhost}", map[string]string{"vhost": name}))
}

// CreateVirtualHost creates a virtual host. PUT is idempotent, so an
// existing virtual host is updated in place.
func (c *ManagementClient) CreateVirtualHost(ctx context.Context, params requests.VirtualHostParams) error {
	return c.send(ctx, put("CreateVirtualHost", "/api/vhosts/{vhost}", map[string]string{"vhost": params.Name}, params))
}

func (c *ManagementClient) UpdateVirtualHost(ctx context.Context, params requests.VirtualHostParams) error {
	return c.send(ctx, put("UpdateVirtualHost", "/api/vhosts/{vhost}", map[string]string{"vhost": params.Name}, params))
}

func (c *ManagementClient) DeleteVirtualHost(ctx context.Context, name string) error {
	return c.send(ctx, del("DeleteVirtualHost", "/api/vhosts/{vhost}", map[string]string{"vhost": name}))
}

func (c *ManagementClient) ListVirtualHostLimits(ctx context.Context) ([]responses.VirtualHostLimits, error) {
	return fetch[[]responses.VirtualHostLimits](ctx, c, get("ListVirtualHostLimits", "/api/vhost-limits", nil))
}

func (c *ManagementClient) GetVirtualHostLimits(ctx context.Context, vhost string) ([]responses.VirtualHostLimits, error) {
	return fetch[[]responses.VirtualHostLimits](ctx, c, get("GetVirtualHostLimits", "/api/vhost-limits/{vhost}", map[string]string{"vhost": vhost}))
}

// SetVirtualHostLimit enforces one limit; a negative value lifts the cap
// without clearing the limit.
func (c *ManagementClient) SetVirtualHostLimit(ctx context.Context, vhost string, limit requests.EnforcedLimitParams[enums.VirtualHostLimitTarget]) error {
	return c.send(ctx, put("SetVirtualHostLimit", "/api/vhost-limits/{vhost}/{limit}",
		map[string]string{"vhost": vhost, "limit": limit.Kind.String()},
		limitValue{Value: limit.Value},
	))
}

func (c *ManagementClient) ClearVirtualHostLimit(ctx context.Context, vhost string, kind enums.VirtualHostLimitTarget) error {
	return c.send(ctx, del("ClearVirtualHostLimit", "/api/vhost-limits/{vhost}/{limit}",
		map[string]string{"vhost": vhost, "limit": kind.String()},
	))
}

// limitValue is the body of a limit PUT; the limit name travels in the path.
type limitValue struct {
	Value int64 `json:"value"`
}
