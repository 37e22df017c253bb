package lib

import (
	"context"

	"github.com/octabyte/bm-rabbitmq-api/requests"
	"github.com/octabyte/bm-rabbitmq-api/responses"
)

func (c *ManagementClient) ListPolicies(ctx context.Context) ([]responses.Policy, error) {
	return fetch[[]responses.Policy](ctx, c, get("ListPolicies", "/api/policies", nil))
}

func (c *ManagementClient) ListPoliciesIn(ctx context.Context, vhost string) ([]responses.Policy, error) {
	return fetch[[]responses.Policy](ctx, c, get("ListPoliciesIn", "/api/policies/{vhost}", map[string]string{"vhost": vhost}))
}

func (c *ManagementClient) DeclarePolicy(ctx context.Context, params requests.PolicyParams) error {
	return c.send(ctx, put("DeclarePolicy", "/api/policies/{vhost}/{name}", map[string]string{"vhost": params.VHost, "name": params.Name}, params))
}

func (c *ManagementClient) DeletePolicy(ctx context.Context, vhost, name string) error {
	return c.send(ctx, del("DeletePolicy", "/api/policies/{vhost}/{name}", map[string]string{"vhost": vhost, "name": name}))
}

func (c *ManagementClient) ListRuntimeParameters(ctx context.Context) ([]responses.RuntimeParameter, error) {
	return fetch[[]responses.RuntimeParameter](ctx, c, get("ListRuntimeParameters", "/api/parameters", nil))
}

func (c *ManagementClient) ListRuntimeParametersOf(ctx context.Context, component string) ([]responses.RuntimeParameter, error) {
	return fetch[[]responses.RuntimeParameter](ctx, c, get("ListRuntimeParametersOf", "/api/parameters/{component}", map[string]string{"component": component}))
}

func (c *ManagementClient) UpsertRuntimeParameter(ctx context.Context, params requests.RuntimeParameterDefinition) error {
	return c.send(ctx, put("UpsertRuntimeParameter", "/api/parameters/{component}/{vhost}/{name}",
		map[string]string{"component": params.Component, "vhost": params.VHost, "name": params.Name},
		params,
	))
}

func (c *ManagementClient) ClearRuntimeParameter(ctx context.Context, component, vhost, name string) error {
	return c.send(ctx, del("ClearRuntimeParameter", "/api/parameters/{component}/{vhost}/{name}",
		map[string]string{"component": component, "vhost": vhost, "name": name},
	))
}
