package lib

import (
	"context"

	"github.com/octabyte/bm-rabbitmq-api/responses"
)

func (c *ManagementClient) ExportDefinitions(ctx context.Context) (responses.DefinitionSet, error) {
	return fetch[responses.DefinitionSet](ctx, c, get("ExportDefinitions", "/api/definitions", nil))
}

func (c *ManagementClient) ExportDefinitionsIn(ctx context.Context, vhost string) (responses.DefinitionSet, error) {
	return fetch[responses.DefinitionSet](ctx, c, get("ExportDefinitionsIn", "/api/definitions/{vhost}", map[string]string{"vhost": vhost}))
}

// ImportDefinitions merges defs into the cluster. Existing objects with the
// same identity are left alone by the server.
func (c *ManagementClient) ImportDefinitions(ctx context.Context, defs responses.DefinitionSet) error {
	return c.send(ctx, post("ImportDefinitions", "/api/definitions", nil, defs))
}

// vhostDefinitions is the part of a definitions export that the per-vhost
// import endpoint reads. Users, vhosts and permissions are cluster-wide.
type vhostDefinitions struct {
	ServerVersion string                         `json:"rabbitmq_version,omitempty"`
	Parameters    []responses.RuntimeParameter   `json:"parameters,omitempty"`
	Policies      []responses.Policy             `json:"policies,omitempty"`
	Queues        []responses.QueueDefinition    `json:"queues,omitempty"`
	Exchanges     []responses.ExchangeDefinition `json:"exchanges,omitempty"`
	Bindings      []responses.BindingInfo        `json:"bindings,omitempty"`
}

// ImportDefinitionsIn merges the vhost-scoped part of defs into vhost, for
// example an export taken with ExportDefinitionsIn. The objects land in
// vhost whatever virtual host they were exported from.
func (c *ManagementClient) ImportDefinitionsIn(ctx context.Context, vhost string, defs responses.DefinitionSet) error {
	body := vhostDefinitions{
		ServerVersion: defs.ServerVersion,
		Parameters:    defs.Parameters,
		Policies:      defs.Policies,
		Queues:        defs.Queues,
		Exchanges:     defs.Exchanges,
		Bindings:      defs.Bindings,
	}
	return c.send(ctx, post("ImportDefinitionsIn", "/api/definitions/{vhost}", map[string]string{"vhost": vhost}, body))
}
