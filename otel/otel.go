package otel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config holds the OTLP export settings.
type Config struct {
	Enabled bool
	// Endpoint: OTLP/HTTP collector address, e.g. "localhost:4318" or "https://otel.example.com".
	Endpoint    string `validate:"required_if=Enabled true"`
	ServiceName string `validate:"required_if=Enabled true"`
	// Headers: sent with every export, e.g. {"authorization": "<api key>"}.
	Headers     map[string]string
	Environment string
	// SampleRate: fraction of traces kept, 0.0 to 1.0.
	SampleRate float64 `validate:"gte=0,lte=1"`
}

// Init installs global tracer and meter providers exporting over OTLP/HTTP
// and returns a shutdown function flushing both. Disabled config yields a no-op.
func Init(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid otel configuration: %w", err)
	}

	res := newResource(cfg)

	tracerShutdown, err := setupTracing(ctx, res, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup tracing: %w", err)
	}

	metricsShutdown, err := setupMetrics(ctx, res, cfg)
	if err != nil {
		_ = tracerShutdown(ctx)
		return nil, fmt.Errorf("failed to setup metrics: %w", err)
	}

	return func(ctx context.Context) error {
		return errors.Join(tracerShutdown(ctx), metricsShutdown(ctx))
	}, nil
}

func newResource(cfg Config) *resource.Resource {
	hostName, _ := os.Hostname()

	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.Environment),
		semconv.HostName(hostName),
	)
}

// endpointHost strips the scheme off endpoint and reports whether TLS is off.
func endpointHost(endpoint string) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), false
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), true
	default:
		return endpoint, true
	}
}

func setupTracing(ctx context.Context, res *resource.Resource, cfg Config) (func(context.Context) error, error) {
	host, insecure := endpointHost(cfg.Endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(cfg.Headers))
	}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRate))),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return provider.Shutdown, nil
}

func setupMetrics(ctx context.Context, res *resource.Resource, cfg Config) (func(context.Context) error, error) {
	host, insecure := endpointHost(cfg.Endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlpmetrichttp.WithHeaders(cfg.Headers))
	}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	provider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter)),
		metric.WithResource(res),
	)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}
