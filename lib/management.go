package lib

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/octabyte/bm-rabbitmq-api/otel"
	tracelog "github.com/octabyte/bm-rabbitmq-api/otel/logger"
	"github.com/octabyte/bm-rabbitmq-api/otel/metrics"
	"github.com/octabyte/bm-rabbitmq-api/responses"
	"github.com/octabyte/bm-rabbitmq-api/utils"
)

// ManagementClient talks to the RabbitMQ HTTP management API. It is safe
// for concurrent use. Calls are not retried.
type ManagementClient struct {
	cfg  ManagementClientConfig
	http *resty.Client
}

func NewManagementClient(cfg *ManagementClientConfig) (*ManagementClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := *cfg
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ClientName == "" {
		c.ClientName = DefaultClientName
	}

	client := resty.New().
		SetBaseURL(c.Endpoint).
		SetBasicAuth(c.Username, c.Password).
		SetTimeout(c.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(utils.Marshal).
		SetJSONUnmarshaler(utils.Unmarshal)

	return &ManagementClient{cfg: c, http: client}, nil
}

// Endpoint is the base URL the client was configured with.
func (c *ManagementClient) Endpoint() string {
	return c.cfg.Endpoint
}

// call describes one management API request. path is a resty template
// ("/api/queues/{vhost}/{name}"); pathParams are escaped, so "/" becomes %2F.
type call struct {
	operation  string
	method     string
	path       string
	pathParams map[string]string
	query      map[string]string
	headers    map[string]string
	body       interface{}
}

func (c *ManagementClient) do(ctx context.Context, req call) (*resty.Response, error) {
	var attrs []attribute.KeyValue
	if vhost, ok := req.pathParams["vhost"]; ok {
		attrs = append(attrs, otel.VirtualHostKey.String(vhost))
	}
	ctx, finish := otel.StartHTTPSpan(ctx, c.cfg.ClientName, req.operation, req.method, c.cfg.Endpoint, req.path, attrs...)

	metrics.IncrementInFlightRequests(ctx, req.operation)
	defer metrics.DecrementInFlightRequests(ctx, req.operation)

	r := c.http.R().SetContext(ctx)
	otel.InjectTraceHeaders(ctx, r.Header)
	if len(req.pathParams) > 0 {
		r.SetPathParams(req.pathParams)
	}
	if len(req.query) > 0 {
		r.SetQueryParams(req.query)
	}
	if len(req.headers) > 0 {
		r.SetHeaders(req.headers)
	}
	if req.body != nil {
		r.SetBody(req.body)
	}

	start := time.Now()
	resp, err := r.Execute(req.method, req.path)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordRequest(ctx, req.operation, req.method, 0, elapsed, 0)
		finish(0, err)
		tracelog.ErrorCtx(ctx, "management request failed", err,
			zap.String("operation", req.operation),
			zap.String("method", req.method),
			zap.String("path", req.path),
		)
		return nil, fmt.Errorf("%s: %w", req.operation, err)
	}

	status := resp.StatusCode()
	metrics.RecordRequest(ctx, req.operation, req.method, status, elapsed, resp.Size())
	finish(status, nil)

	if resp.IsError() {
		errResp := newErrorResponse(req.operation, req.method, resp.Request.URL, status, resp.Body())
		tracelog.WarnCtx(ctx, "management request returned an error status",
			zap.String("operation", req.operation),
			zap.Int("status", status),
			zap.String("error", errResp.Message),
			zap.String("reason", errResp.Reason),
		)
		return resp, errResp
	}

	tracelog.DebugCtx(ctx, "management request",
		zap.String("operation", req.operation),
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", status),
		zap.Duration("elapsed", elapsed),
	)
	return resp, nil
}

// send runs a request whose response body is not needed.
func (c *ManagementClient) send(ctx context.Context, req call) error {
	_, err := c.do(ctx, req)
	return err
}

// fetch runs a request and decodes the response body into T.
func fetch[T any](ctx context.Context, c *ManagementClient, req call) (T, error) {
	var zero T
	resp, err := c.do(ctx, req)
	if err != nil {
		return zero, err
	}

	out, err := responses.Decode[T](resp.Body())
	if err != nil {
		metrics.RecordDecodeError(ctx, req.operation)
		tracelog.ErrorCtx(ctx, "management response could not be decoded", err, zap.String("operation", req.operation))
		return zero, fmt.Errorf("%s: %w", req.operation, err)
	}
	return out, nil
}

func get(operation, path string, pathParams map[string]string) call {
	return call{operation: operation, method: http.MethodGet, path: path, pathParams: pathParams}
}

func put(operation, path string, pathParams map[string]string, body interface{}) call {
	return call{operation: operation, method: http.MethodPut, path: path, pathParams: pathParams, body: body}
}

func post(operation, path string, pathParams map[string]string, body interface{}) call {
	return call{operation: operation, method: http.MethodPost, path: path, pathParams: pathParams, body: body}
}

func del(operation, path string, pathParams map[string]string) call {
	return call{operation: operation, method: http.MethodDelete, path: path, pathParams: pathParams}
}
