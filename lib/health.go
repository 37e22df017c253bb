package lib

import (
	"context"
	"errors"
	"net/http"

	"github.com/octabyte/bm-rabbitmq-api/responses"
)

func (c *ManagementClient) Overview(ctx context.Context) (responses.Overview, error) {
	return fetch[responses.Overview](ctx, c, get("Overview", "/api/overview", nil))
}

func (c *ManagementClient) ClusterName(ctx context.Context) (responses.ClusterIdentity, error) {
	return fetch[responses.ClusterIdentity](ctx, c, get("ClusterName", "/api/cluster-name", nil))
}

func (c *ManagementClient) ListNodes(ctx context.Context) ([]responses.ClusterNode, error) {
	return fetch[[]responses.ClusterNode](ctx, c, get("ListNodes", "/api/nodes", nil))
}

func (c *ManagementClient) GetNode(ctx context.Context, name string) (responses.ClusterNode, error) {
	return fetch[responses.ClusterNode](ctx, c, get("GetNode", "/api/nodes/{node}", map[string]string{"node": name}))
}

// HealthCheckClusterWideAlarms fails with *HealthCheckFailedError when any
// node in the cluster has a resource alarm in effect.
func (c *ManagementClient) HealthCheckClusterWideAlarms(ctx context.Context) error {
	return c.healthCheck(ctx, "HealthCheckClusterWideAlarms", "/api/health/checks/alarms")
}

// HealthCheckLocalAlarms only considers alarms on the node serving the request.
func (c *ManagementClient) HealthCheckLocalAlarms(ctx context.Context) error {
	return c.healthCheck(ctx, "HealthCheckLocalAlarms", "/api/health/checks/local-alarms")
}

// HealthCheckNodeIsQuorumCritical fails when shutting the node down would
// leave some quorum queues or streams without a majority of replicas.
func (c *ManagementClient) HealthCheckNodeIsQuorumCritical(ctx context.Context) error {
	return c.healthCheck(ctx, "HealthCheckNodeIsQuorumCritical", "/api/health/checks/node-is-quorum-critical")
}

func (c *ManagementClient) healthCheck(ctx context.Context, operation, path string) error {
	_, err := c.do(ctx, get(operation, path, nil))
	if err == nil {
		return nil
	}

	var errResp *ErrorResponse
	if !errors.As(err, &errResp) || errResp.StatusCode != http.StatusServiceUnavailable {
		return err
	}

	details, decodeErr := responses.DecodeHealthCheckFailure(errResp.Body)
	if decodeErr != nil {
		return errors.Join(err, decodeErr)
	}
	return &HealthCheckFailedError{Operation: operation, StatusCode: errResp.StatusCode, Details: details}
}
