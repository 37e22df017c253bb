package lib

import (
	"context"

	"github.com/octabyte/bm-rabbitmq-api/enums"
	"github.com/octabyte/bm-rabbitmq-api/requests"
	"github.com/octabyte/bm-rabbitmq-api/responses"
)

func (c *ManagementClient) ListUsers(ctx context.Context) ([]responses.User, error) {
	return fetch[[]responses.User](ctx, c, get("ListUsers", "/api/users", nil))
}

func (c *ManagementClient) GetUser(ctx context.Context, name string) (responses.User, error) {
	return fetch[responses.User](ctx, c, get("GetUser", "/api/users/{user}", map[string]string{"user": name}))
}

func (c *ManagementClient) CreateUser(ctx context.Context, params requests.UserParams) error {
	return c.send(ctx, put("CreateUser", "/api/users/{user}", map[string]string{"user": params.Name}, params))
}

func (c *ManagementClient) DeleteUser(ctx context.Context, name string) error {
	return c.send(ctx, del("DeleteUser", "/api/users/{user}", map[string]string{"user": name}))
}

func (c *ManagementClient) ListPermissions(ctx context.Context) ([]responses.Permissions, error) {
	return fetch[[]responses.Permissions](ctx, c, get("ListPermissions", "/api/permissions", nil))
}

func (c *ManagementClient) ListPermissionsIn(ctx context.Context, vhost string) ([]responses.Permissions, error) {
	return fetch[[]responses.Permissions](ctx, c, get("ListPermissionsIn", "/api/vhosts/{vhost}/permissions", map[string]string{"vhost": vhost}))
}

func (c *ManagementClient) DeclarePermissions(ctx context.Context, params requests.Permissions) error {
	return c.send(ctx, put("DeclarePermissions", "/api/permissions/{vhost}/{user}",
		map[string]string{"vhost": params.VHost, "user": params.User},
		params,
	))
}

func (c *ManagementClient) ClearPermissions(ctx context.Context, vhost, user string) error {
	return c.send(ctx, del("ClearPermissions", "/api/permissions/{vhost}/{user}",
		map[string]string{"vhost": vhost, "user": user},
	))
}

func (c *ManagementClient) ListUserLimits(ctx context.Context) ([]responses.UserLimits, error) {
	return fetch[[]responses.UserLimits](ctx, c, get("ListUserLimits", "/api/user-limits", nil))
}

func (c *ManagementClient) SetUserLimit(ctx context.Context, user string, limit requests.EnforcedLimitParams[enums.UserLimitTarget]) error {
	return c.send(ctx, put("SetUserLimit", "/api/user-limits/{user}/{limit}",
		map[string]string{"user": user, "limit": limit.Kind.String()},
		limitValue{Value: limit.Value},
	))
}

func (c *ManagementClient) ClearUserLimit(ctx context.Context, user string, kind enums.UserLimitTarget) error {
	return c.send(ctx, del("ClearUserLimit", "/api/user-limits/{user}/{limit}",
		map[string]string{"user": user, "limit": kind.String()},
	))
}
