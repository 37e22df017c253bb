package otel

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// TracerName is the instrumentation scope of spans opened around
// management API calls.
const TracerName = "github.com/octabyte/bm-rabbitmq-api/lib"

// Span attribute keys specific to the management API.
const (
	OperationKey   = attribute.Key("rabbitmq.management.operation")
	VirtualHostKey = attribute.Key("rabbitmq.vhost")
)

// StartHTTPSpan opens a client span named "HTTP.<client>.<operation>" for one
// management API call. The returned finish function ends the span and must be
// called once the response, or the transport error, is known.
func StartHTTPSpan(ctx context.Context, clientName, operation, method, baseURL, path string, attrs ...attribute.KeyValue) (context.Context, func(statusCode int, err error)) {
	tracer := otel.Tracer(TracerName)
	ctx, span := tracer.Start(ctx, fmt.Sprintf("HTTP.%s.%s", clientName, operation))

	span.SetAttributes(
		semconv.HTTPRequestMethodKey.String(method),
		semconv.URLFull(baseURL+path),
		attribute.String("http.target", path),
		OperationKey.String(operation),
	)
	span.SetAttributes(attrs...)

	return ctx, func(statusCode int, err error) {
		defer span.End()

		if statusCode > 0 {
			span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(statusCode))
		}

		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case statusCode >= 400:
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", statusCode))
		default:
			span.SetStatus(codes.Ok, "")
		}
	}
}

// InjectTraceHeaders writes the propagation headers (traceparent, baggage)
// for the span in ctx into header.
func InjectTraceHeaders(ctx context.Context, header http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
}
