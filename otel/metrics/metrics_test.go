package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestRecordRequest(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(original)
		_ = provider.Shutdown(context.Background())
	})

	require.NoError(t, Init("test"))

	ctx := context.Background()
	IncrementInFlightRequests(ctx, "ListQueues")
	RecordRequest(ctx, "ListQueues", "GET", 200, 25*time.Millisecond, 512)
	RecordRequest(ctx, "ListQueues", "GET", 503, 10*time.Millisecond, 0)
	DecrementInFlightRequests(ctx, "ListQueues")
	RecordDecodeError(ctx, "ListQueues")

	metrics := collect(t, reader)

	total, ok := metrics["rabbitmq_management_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var requests int64
	for _, point := range total.DataPoints {
		requests += point.Value
	}
	assert.Equal(t, int64(2), requests)

	size, ok := metrics["rabbitmq_management_response_size_bytes"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, size.DataPoints, 1)
	assert.Equal(t, uint64(1), size.DataPoints[0].Count)

	inFlight, ok := metrics["rabbitmq_management_requests_in_flight"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, inFlight.DataPoints, 1)
	assert.Equal(t, int64(0), inFlight.DataPoints[0].Value)

	decode, ok := metrics["rabbitmq_management_decode_errors_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, decode.DataPoints, 1)
	assert.Equal(t, int64(1), decode.DataPoints[0].Value)
}
