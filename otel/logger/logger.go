// Package logger writes through utils/logger, tagging every entry with the
// trace and span of the calling context.
package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/octabyte/bm-rabbitmq-api/utils/logger"
)

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	logger.LogDebug(msg, withTrace(ctx, fields)...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	logger.LogInfo(msg, withTrace(ctx, fields)...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	logger.LogWarn(msg, withTrace(ctx, fields)...)
}

// ErrorCtx logs msg with err attached; err may be nil.
func ErrorCtx(ctx context.Context, msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.LogError(msg, withTrace(ctx, fields)...)
}

// TraceFields returns trace_id and span_id fields, or nothing when ctx
// carries no valid span.
func TraceFields(ctx context.Context) []zap.Field {
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	}
}

func GetTraceID(ctx context.Context) string {
	spanContext := trace.SpanContextFromContext(ctx)
	if spanContext.IsValid() {
		return spanContext.TraceID().String()
	}
	return ""
}

func withTrace(ctx context.Context, fields []zap.Field) []zap.Field {
	traceFields := TraceFields(ctx)
	if len(traceFields) == 0 {
		return fields
	}
	return append(traceFields, fields...)
}
