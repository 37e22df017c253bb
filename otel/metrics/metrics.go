// Package metrics records request metrics for management API calls.
// Recording before Init is a no-op.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	requestsTotal    metric.Int64Counter
	requestDuration  metric.Float64Histogram
	requestsInFlight metric.Int64UpDownCounter
	responseSize     metric.Int64Histogram
	decodeErrors     metric.Int64Counter
)

// Init creates the instruments on the global meter provider.
func Init(meterName string) error {
	meter := otel.Meter(meterName)

	var err error
	requestsTotal, err = meter.Int64Counter(
		"rabbitmq_management_requests_total",
		metric.WithDescription("Total number of management API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rabbitmq_management_requests_total counter: %w", err)
	}

	requestDuration, err = meter.Float64Histogram(
		"rabbitmq_management_request_duration_seconds",
		metric.WithDescription("Management API request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rabbitmq_management_request_duration_seconds histogram: %w", err)
	}

	requestsInFlight, err = meter.Int64UpDownCounter(
		"rabbitmq_management_requests_in_flight",
		metric.WithDescription("Number of management API requests currently in flight"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rabbitmq_management_requests_in_flight counter: %w", err)
	}

	responseSize, err = meter.Int64Histogram(
		"rabbitmq_management_response_size_bytes",
		metric.WithDescription("Management API response size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rabbitmq_management_response_size_bytes histogram: %w", err)
	}

	decodeErrors, err = meter.Int64Counter(
		"rabbitmq_management_decode_errors_total",
		metric.WithDescription("Responses that could not be decoded"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rabbitmq_management_decode_errors_total counter: %w", err)
	}

	return nil
}

// RecordRequest records one completed call. statusCode is 0 when the
// request failed before a response arrived.
func RecordRequest(ctx context.Context, operation, method string, statusCode int, duration time.Duration, size int64) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("http.method", method),
		attribute.Int("http.status_code", statusCode),
	)

	if requestsTotal != nil {
		requestsTotal.Add(ctx, 1, attrs)
	}
	if requestDuration != nil {
		requestDuration.Record(ctx, duration.Seconds(), attrs)
	}
	if responseSize != nil && size > 0 {
		responseSize.Record(ctx, size, attrs)
	}
}

func IncrementInFlightRequests(ctx context.Context, operation string) {
	if requestsInFlight != nil {
		requestsInFlight.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}

func DecrementInFlightRequests(ctx context.Context, operation string) {
	if requestsInFlight != nil {
		requestsInFlight.Add(ctx, -1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}

// RecordDecodeError counts a response body that did not match its snapshot type.
func RecordDecodeError(ctx context.Context, operation string) {
	if decodeErrors != nil {
		decodeErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
	}
}
