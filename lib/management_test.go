package lib

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/octabyte/bm-rabbitmq-api/enums"
	"github.com/octabyte/bm-rabbitmq-api/requests"
	"github.com/octabyte/bm-rabbitmq-api/responses"
	"github.com/octabyte/bm-rabbitmq-api/testutil/fakeapi"
)

type ManagementClientTestSuite struct {
	suite.Suite
	server         *fakeapi.Server
	client         *ManagementClient
	ctx            context.Context
	originalLogger *zap.Logger
	observedLogs   *observer.ObservedLogs
}

func (suite *ManagementClientTestSuite) SetupSuite() {
	suite.originalLogger = zap.L()
}

func (suite *ManagementClientTestSuite) TearDownSuite() {
	zap.ReplaceGlobals(suite.originalLogger)
}

func (suite *ManagementClientTestSuite) SetupTest() {
	core, logs := observer.New(zap.DebugLevel)
	suite.observedLogs = logs
	zap.ReplaceGlobals(zap.New(core))

	suite.ctx = context.Background()
	suite.server = fakeapi.New("guest", "guest")

	client, err := NewManagementClient(&ManagementClientConfig{
		Endpoint: suite.server.URL(),
		Username: "guest",
		Password: "guest",
		Timeout:  5 * time.Second,
	})
	suite.Require().NoError(err)
	suite.client = client
}

func (suite *ManagementClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ManagementClientTestSuite) TestOverview() {
	suite.server.Handle(http.MethodGet, "/api/overview", http.StatusOK, `{
		"cluster_name": "rabbit@node-1",
		"node": "rabbit@node-1",
		"rabbitmq_version": "3.13.7",
		"product_name": "RabbitMQ",
		"churn_rates": {"queue_declared": 3},
		"object_totals": {"queues": 3, "exchanges": 7}
	}`)

	overview, err := suite.client.Overview(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("rabbit@node-1", overview.ClusterName)
	suite.Equal(uint32(3), overview.ChurnRates.QueueDeclared)
	suite.Nil(overview.ClusterTags)

	request := suite.server.LastRequest()
	suite.Equal(http.MethodGet, request.Method)
	suite.Equal("/api/overview", request.Path)
	suite.NotEmpty(request.Header.Get("Authorization"))
}

func (suite *ManagementClientTestSuite) TestListQueuesInEscapesVirtualHost() {
	suite.server.Handle(http.MethodGet, "/api/queues/:vhost", http.StatusOK, `[
		{"name": "orders", "vhost": "/", "type": "quorum", "durable": true, "auto_delete": false,
		 "exclusive": false, "arguments": {"x-queue-type": "quorum"}, "leader": "rabbit@node-1",
		 "members": ["rabbit@node-1"], "online": ["rabbit@node-1"], "messages": 4}
	]`)

	queues, err := suite.client.ListQueuesIn(suite.ctx, "/")
	suite.Require().NoError(err)
	suite.Require().Len(queues, 1)
	suite.Equal(enums.QueueTypeQuorum, queues[0].Type())
	suite.Equal(uint64(4), queues[0].MessageCount)
	suite.Equal("/api/queues/%2F", suite.server.LastRequest().Path)
}

func (suite *ManagementClientTestSuite) TestDeclareQueue() {
	suite.server.Handle(http.MethodPut, "/api/queues/:vhost/:name", http.StatusCreated, "")

	params := requests.NewQuorumQueueParams("orders", requests.XArguments{"x-delivery-limit": 5})
	suite.Require().NoError(suite.client.DeclareQueue(suite.ctx, "/", params))

	request := suite.server.LastRequest()
	suite.Equal(http.MethodPut, request.Method)
	suite.Equal("/api/queues/%2F/orders", request.Path)
	suite.JSONEq(`{
		"name": "orders",
		"durable": true,
		"auto_delete": false,
		"exclusive": false,
		"arguments": {"x-queue-type": "quorum", "x-delivery-limit": 5}
	}`, string(request.Body))
}

func (suite *ManagementClientTestSuite) TestDeclareExchangeAndBind() {
	suite.server.Handle(http.MethodPut, "/api/exchanges/:vhost/:name", http.StatusCreated, "")
	suite.server.Handle(http.MethodPost, "/api/bindings/:vhost/e/:source/:kind/:destination", http.StatusCreated, "")

	suite.Require().NoError(suite.client.DeclareExchange(suite.ctx, "staging", requests.DurableTopicExchangeParams("events", nil)))
	suite.JSONEq(`{"name":"events","type":"topic","durable":true,"auto_delete":false}`, string(suite.server.LastRequest().Body))

	suite.Require().NoError(suite.client.Bind(suite.ctx, requests.NewQueueBindingParams("staging", "events", "orders", "orders.#", nil)))
	request := suite.server.LastRequest()
	suite.Equal("/api/bindings/staging/e/events/q/orders", request.Path)
	suite.JSONEq(`{"routing_key":"orders.#"}`, string(request.Body))

	suite.Require().NoError(suite.client.Bind(suite.ctx, requests.NewExchangeBindingParams("/", "events", "audit", "", nil)))
	suite.Equal("/api/bindings/%2F/e/events/e/audit", suite.server.LastRequest().Path)
}

func (suite *ManagementClientTestSuite) TestUnbind() {
	suite.server.Handle(http.MethodDelete, "/api/bindings/:vhost/e/:source/:kind/:destination/:props", http.StatusNoContent, "")

	binding := responses.BindingInfo{
		VHost:           "/",
		Source:          "events",
		Destination:     "orders",
		DestinationType: enums.BindingDestinationTypeQueue,
	}
	suite.Require().NoError(suite.client.Unbind(suite.ctx, binding))
	suite.Equal("/api/bindings/%2F/e/events/q/orders/~", suite.server.LastRequest().Path)

	props := "orders.created"
	binding.PropertiesKey = &props
	suite.Require().NoError(suite.client.Unbind(suite.ctx, binding))
	suite.Equal("/api/bindings/%2F/e/events/q/orders/orders.created", suite.server.LastRequest().Path)
}

func (suite *ManagementClientTestSuite) TestNotFound() {
	_, err := suite.client.GetQueueInfo(suite.ctx, "/", "missing")

	suite.Require().Error(err)
	suite.True(IsNotFound(err))

	var errResp *ErrorResponse
	suite.Require().True(errors.As(err, &errResp))
	suite.Equal("GetQueueInfo", errResp.Operation)
	suite.Equal("Object Not Found", errResp.Message)
	suite.Equal("Not Found", errResp.Reason)
	suite.Contains(err.Error(), "404")

	warnings := suite.observedLogs.FilterLevelExact(zapcore.WarnLevel).All()
	suite.Require().Len(warnings, 1)
	suite.Equal("GetQueueInfo", warnings[0].ContextMap()["operation"])
}

func (suite *ManagementClientTestSuite) TestUnauthorized() {
	client, err := NewManagementClient(&ManagementClientConfig{
		Endpoint: suite.server.URL(),
		Username: "guest",
		Password: "wrong",
	})
	suite.Require().NoError(err)

	_, err = client.ListVirtualHosts(suite.ctx)
	suite.True(IsUnauthorized(err))
	suite.False(IsNotFound(err))
}

func (suite *ManagementClientTestSuite) TestDecodeFailure() {
	suite.server.Handle(http.MethodGet, "/api/nodes/:node", http.StatusOK, `{"name":"rabbit@node-1","os_pid":"unknown"}`)

	_, err := suite.client.GetNode(suite.ctx, "rabbit@node-1")

	var decodeErr *responses.DecodeError
	suite.Require().True(errors.As(err, &decodeErr))
	suite.Equal("os_pid", decodeErr.Field)
	suite.ErrorIs(err, responses.ErrNotNumeric)
}

func (suite *ManagementClientTestSuite) TestListNodes() {
	suite.server.Handle(http.MethodGet, "/api/nodes", http.StatusOK, `[
		{"name": "rabbit@node-1", "os_pid": "4242", "uptime": 1000, "mem_alarm": false, "rates_mode": "basic"}
	]`)

	nodes, err := suite.client.ListNodes(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(nodes, 1)
	suite.Equal(responses.ProcessID(4242), nodes[0].OSPid)
}

func (suite *ManagementClientTestSuite) TestHealthChecks() {
	suite.server.Handle(http.MethodGet, "/api/health/checks/local-alarms", http.StatusOK, `{"status":"ok"}`)
	suite.server.Handle(http.MethodGet, "/api/health/checks/alarms", http.StatusServiceUnavailable, `{
		"status": "failed",
		"reason": "There are alarms in effect in the cluster",
		"alarms": [{"node": "rabbit@node-2", "resource": "disk"}]
	}`)
	suite.server.Handle(http.MethodGet, "/api/health/checks/node-is-quorum-critical", http.StatusServiceUnavailable, `{
		"status": "failed",
		"reason": "There are quorum queues that would lose their quorum if the target node is shut down",
		"queues": [{"name": "orders", "virtual_host": "/", "type": "quorum"}]
	}`)

	suite.NoError(suite.client.HealthCheckLocalAlarms(suite.ctx))

	err := suite.client.HealthCheckClusterWideAlarms(suite.ctx)
	var failed *HealthCheckFailedError
	suite.Require().True(errors.As(err, &failed))
	alarms, ok := failed.Details.(*responses.ClusterAlarmCheckDetails)
	suite.Require().True(ok)
	suite.Equal("disk", alarms.Alarms[0].Resource)
	suite.Contains(err.Error(), "There are alarms in effect")

	err = suite.client.HealthCheckNodeIsQuorumCritical(suite.ctx)
	suite.Require().True(errors.As(err, &failed))
	quorum, ok := failed.Details.(*responses.QuorumCriticalityCheckDetails)
	suite.Require().True(ok)
	suite.Equal("orders", quorum.Queues[0].Name)
}

func (suite *ManagementClientTestSuite) TestLimits() {
	suite.server.Handle(http.MethodPut, "/api/vhost-limits/:vhost/:limit", http.StatusNoContent, "")
	suite.server.Handle(http.MethodDelete, "/api/vhost-limits/:vhost/:limit", http.StatusNoContent, "")
	suite.server.Handle(http.MethodPut, "/api/user-limits/:user/:limit", http.StatusNoContent, "")
	suite.server.Handle(http.MethodGet, "/api/user-limits", http.StatusOK, `[{"user":"guest","value":{"max-channels":10}}]`)

	limit := requests.NewEnforcedLimitParams(enums.VirtualHostLimitTargetMaxQueues, 500)
	suite.Require().NoError(suite.client.SetVirtualHostLimit(suite.ctx, "/", limit))
	request := suite.server.LastRequest()
	suite.Equal("/api/vhost-limits/%2F/max-queues", request.Path)
	suite.JSONEq(`{"value":500}`, string(request.Body))

	suite.Require().NoError(suite.client.ClearVirtualHostLimit(suite.ctx, "/", enums.VirtualHostLimitTargetMaxConnections))
	suite.Equal("/api/vhost-limits/%2F/max-connections", suite.server.LastRequest().Path)

	userLimit := requests.NewEnforcedLimitParams(enums.UserLimitTargetMaxChannels, 10)
	suite.Require().NoError(suite.client.SetUserLimit(suite.ctx, "guest", userLimit))
	suite.Equal("/api/user-limits/guest/max-channels", suite.server.LastRequest().Path)

	limits, err := suite.client.ListUserLimits(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(float64(10), limits[0].Limits["max-channels"])
}

func (suite *ManagementClientTestSuite) TestMessages() {
	suite.server.Handle(http.MethodPost, "/api/exchanges/:vhost/:name/publish", http.StatusOK, `{"routed":true}`)
	suite.server.Handle(http.MethodPost, "/api/queues/:vhost/:name/get", http.StatusOK, `[
		{"payload_bytes": 5, "redelivered": false, "exchange": "", "routing_key": "orders",
		 "message_count": 0, "properties": [], "payload": "hello", "payload_encoding": "string"}
	]`)

	routed, err := suite.client.PublishMessage(suite.ctx, "/", "", requests.NewPublishMessageParams("orders", "hello", nil))
	suite.Require().NoError(err)
	suite.True(routed.Routed)
	suite.Equal("/api/exchanges/%2F/amq.default/publish", suite.server.LastRequest().Path)

	messages, err := suite.client.GetMessages(suite.ctx, "/", "orders", requests.NewGetMessagesParams(1))
	suite.Require().NoError(err)
	suite.Require().Len(messages, 1)
	suite.Empty(messages[0].Properties)
	suite.JSONEq(`{"count":1,"ackmode":"ack_requeue_true","encoding":"auto"}`, string(suite.server.LastRequest().Body))
}

func (suite *ManagementClientTestSuite) TestUsersPoliciesAndPermissions() {
	suite.server.Handle(http.MethodPut, "/api/users/:user", http.StatusCreated, "")
	suite.server.Handle(http.MethodGet, "/api/users", http.StatusOK, `[{"name":"ops","tags":"administrator","password_hash":"x"}]`)
	suite.server.Handle(http.MethodPut, "/api/policies/:vhost/:name", http.StatusCreated, "")
	suite.server.Handle(http.MethodPut, "/api/permissions/:vhost/:user", http.StatusCreated, "")

	suite.Require().NoError(suite.client.CreateUser(suite.ctx, requests.UserParams{Name: "ops", PasswordHash: "x", Tags: "administrator"}))
	suite.Equal("/api/users/ops", suite.server.LastRequest().Path)

	users, err := suite.client.ListUsers(suite.ctx)
	suite.Require().NoError(err)
	suite.True(users[0].IsAdministrator())

	suite.Require().NoError(suite.client.DeclarePolicy(suite.ctx, requests.PolicyParams{
		VHost:      "/",
		Name:       "ttl",
		Pattern:    ".*",
		ApplyTo:    enums.PolicyTargetStreams,
		Definition: requests.PolicyDefinition{"max-age": "1D"},
	}))
	request := suite.server.LastRequest()
	suite.Equal("/api/policies/%2F/ttl", request.Path)
	suite.Contains(string(request.Body), `"apply-to":"streams"`)

	suite.Require().NoError(suite.client.DeclarePermissions(suite.ctx, requests.Permissions{
		User: "ops", VHost: "/", Configure: ".*", Read: ".*", Write: ".*",
	}))
	suite.Equal("/api/permissions/%2F/ops", suite.server.LastRequest().Path)
}

func (suite *ManagementClientTestSuite) TestCloseConnection() {
	suite.server.Handle(http.MethodDelete, "/api/connections/:name", http.StatusNoContent, "")

	suite.Require().NoError(suite.client.CloseConnection(suite.ctx, "127.0.0.1:5000 -> 127.0.0.1:5672", "maintenance"))
	request := suite.server.LastRequest()
	suite.Equal("maintenance", request.Header.Get("X-Reason"))
	suite.Equal("/api/connections/127.0.0.1:5000%20-%3E%20127.0.0.1:5672", request.Path)
}

func (suite *ManagementClientTestSuite) TestDefinitions() {
	export := `{
		"rabbitmq_version": "3.13.7",
		"users": [], "vhosts": [{"name": "/"}], "permissions": [], "parameters": [], "policies": [],
		"queues": [{"name": "orders", "vhost": "/", "durable": true, "auto_delete": false, "arguments": {}}],
		"exchanges": [], "bindings": []
	}`
	suite.server.Handle(http.MethodGet, "/api/definitions", http.StatusOK, export)
	suite.server.Handle(http.MethodPost, "/api/definitions", http.StatusNoContent, "")

	defs, err := suite.client.ExportDefinitions(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(defs.Queues, 1)

	suite.Require().NoError(suite.client.ImportDefinitions(suite.ctx, defs))
	imported, err := responses.Decode[responses.DefinitionSet](suite.server.LastRequest().Body)
	suite.Require().NoError(err)
	suite.Equal(defs, imported)
}

func (suite *ManagementClientTestSuite) TestVirtualHostDefinitionsRoundTrip() {
	export := `{
		"rabbit_version": "3.13.7", "rabbitmq_version": "3.13.7",
		"parameters": [], "policies": [{"name": "ha", "pattern": ".*", "apply-to": "queues", "definition": {"max-length": 100}, "priority": 0}],
		"queues": [{"name": "orders", "durable": true, "auto_delete": false, "arguments": {"x-max-length": 10000}}],
		"exchanges": [{"name": "events", "type": "topic", "durable": true, "auto_delete": false, "internal": false, "arguments": {}}],
		"bindings": [{"source": "events", "destination": "orders", "destination_type": "queue", "routing_key": "orders.#", "arguments": {}}]
	}`
	suite.server.Handle(http.MethodGet, "/api/definitions/:vhost", http.StatusOK, export)
	suite.server.Handle(http.MethodPost, "/api/definitions/:vhost", http.StatusNoContent, "")

	defs, err := suite.client.ExportDefinitionsIn(suite.ctx, "/")
	suite.Require().NoError(err)
	suite.Nil(defs.Users)
	suite.Nil(defs.VirtualHosts)

	suite.Require().NoError(suite.client.ImportDefinitionsIn(suite.ctx, "/", defs))
	request := suite.server.LastRequest()
	suite.Equal(http.MethodPost, request.Method)
	suite.Equal("/api/definitions/%2F", request.Path)

	body := request.Body
	for _, clusterWide := range []string{"users", "vhosts", "permissions"} {
		suite.False(gjson.GetBytes(body, clusterWide).Exists(), clusterWide)
	}
	suite.Equal("orders", gjson.GetBytes(body, "queues.0.name").String())
	suite.Equal(int64(10000), gjson.GetBytes(body, "queues.0.arguments.x-max-length").Int())
	suite.Equal("events", gjson.GetBytes(body, "exchanges.0.name").String())
	suite.Equal("orders.#", gjson.GetBytes(body, "bindings.0.routing_key").String())
	suite.Equal("ha", gjson.GetBytes(body, "policies.0.name").String())
	suite.False(gjson.GetBytes(body, "parameters").Exists())
}

func (suite *ManagementClientTestSuite) TestVirtualHostLifecycle() {
	suite.server.Handle(http.MethodPut, "/api/vhosts/:vhost", http.StatusCreated, "")
	suite.server.Handle(http.MethodGet, "/api/vhosts/:vhost", http.StatusOK, `{"name":"staging","tracing":false,"metadata":{"description":"","tags":[]}}`)
	suite.server.Handle(http.MethodDelete, "/api/vhosts/:vhost", http.StatusNoContent, "")

	queueType := enums.QueueTypeQuorum
	suite.Require().NoError(suite.client.CreateVirtualHost(suite.ctx, requests.VirtualHostParams{Name: "staging", DefaultQueueType: &queueType}))
	request := suite.server.LastRequest()
	suite.Equal("/api/vhosts/staging", request.Path)
	suite.JSONEq(`{"name":"staging","default_queue_type":"quorum","tracing":false}`, string(request.Body))

	vhost, err := suite.client.GetVirtualHost(suite.ctx, "staging")
	suite.Require().NoError(err)
	suite.Equal("staging", vhost.Name)
	suite.Equal(enums.QueueTypeClassic, vhost.QueueType())

	suite.Require().NoError(suite.client.DeleteVirtualHost(suite.ctx, "staging"))
	suite.Equal(http.MethodDelete, suite.server.LastRequest().Method)
}

func (suite *ManagementClientTestSuite) TestRuntimeParameters() {
	suite.server.Handle(http.MethodPut, "/api/parameters/:component/:vhost/:name", http.StatusCreated, "")
	suite.server.Handle(http.MethodGet, "/api/parameters/:component", http.StatusOK, `[
		{"name": "origin", "vhost": "/", "component": "federation-upstream", "value": []}
	]`)

	suite.Require().NoError(suite.client.UpsertRuntimeParameter(suite.ctx, requests.RuntimeParameterDefinition{
		Name:      "origin",
		VHost:     "/",
		Component: "federation-upstream",
		Value:     requests.RuntimeParameterValue{"uri": "amqp://origin"},
	}))
	suite.Equal("/api/parameters/federation-upstream/%2F/origin", suite.server.LastRequest().Path)

	params, err := suite.client.ListRuntimeParametersOf(suite.ctx, "federation-upstream")
	suite.Require().NoError(err)
	suite.Require().Len(params, 1)
	suite.NotNil(params[0].Value)
	suite.Empty(params[0].Value)
}

func (suite *ManagementClientTestSuite) TestChannelsAndConsumers() {
	suite.server.Handle(http.MethodGet, "/api/vhosts/:vhost/channels", http.StatusOK, `[{"name":"127.0.0.1:5000 (1)","number":1,"vhost":"/"}]`)
	suite.server.Handle(http.MethodGet, "/api/consumers/:vhost", http.StatusOK, `[{"consumer_tag":"ctag-1","ack_required":true,"arguments":{}}]`)

	channels, err := suite.client.ListChannelsIn(suite.ctx, "/")
	suite.Require().NoError(err)
	suite.Equal(uint32(1), channels[0].ID)
	suite.Equal("/api/vhosts/%2F/channels", suite.server.LastRequest().Path)

	consumers, err := suite.client.ListConsumersIn(suite.ctx, "/")
	suite.Require().NoError(err)
	suite.True(consumers[0].ManualAck)
	suite.Equal("/api/consumers/%2F", suite.server.LastRequest().Path)
}

func TestManagementClientTestSuite(t *testing.T) {
	suite.Run(t, new(ManagementClientTestSuite))
}

func TestNewManagementClientValidatesConfig(t *testing.T) {
	_, err := NewManagementClient(&ManagementClientConfig{Endpoint: "not a url", Username: "guest", Password: "guest"})
	assert.Error(t, err)

	_, err = NewManagementClient(&ManagementClientConfig{Endpoint: DefaultEndpoint})
	assert.Error(t, err)

	client, err := NewManagementClient(&ManagementClientConfig{Endpoint: DefaultEndpoint, Username: "guest", Password: "guest"})
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, client.Endpoint())
	assert.Equal(t, DefaultTimeout, client.cfg.Timeout)
	assert.Equal(t, DefaultClientName, client.cfg.ClientName)
}

func TestLoadManagementClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadManagementClientConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
	})

	t.Run("env file and environment", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("RABBITMQ_MGMT_ENDPOINT=http://rabbit.internal:15672\nRABBITMQ_MGMT_USERNAME=from-file\n"), 0o600))
		t.Setenv("RABBITMQ_MGMT_USERNAME", "from-env")
		t.Setenv("RABBITMQ_MGMT_TIMEOUT", "5s")
		t.Cleanup(func() { _ = os.Unsetenv("RABBITMQ_MGMT_ENDPOINT") })

		cfg, err := LoadManagementClientConfig(envFile)
		require.NoError(t, err)
		assert.Equal(t, "http://rabbit.internal:15672", cfg.Endpoint)
		assert.Equal(t, "from-env", cfg.Username)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("RABBITMQ_MGMT_TIMEOUT", "soon")
		_, err := LoadManagementClientConfig(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorContains(t, err, "RABBITMQ_MGMT_TIMEOUT")
	})
}
