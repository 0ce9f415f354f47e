// Package fixtures provides shared test helpers.
package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"orders-backend/pkg/observability"
)

// NewTestMeter returns a meter backed by a manual reader so tests can
// collect and assert recorded values.
func NewTestMeter() (metric.Meter, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return provider.Meter("orders-backend-test"), reader
}

// NewTestOrderMetrics builds an order metrics registry on a manual reader.
func NewTestOrderMetrics(t *testing.T) (*observability.OrderMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	meter, reader := NewTestMeter()
	metrics, err := observability.NewOrderMetrics(meter)
	require.NoError(t, err)
	return metrics, reader
}

// Collect gathers everything recorded so far.
func Collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

// CounterValue sums every data point of an int64 counter. Missing
// instruments count as zero, matching a counter that was never incremented.
func CounterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()

	m, ok := findMetric(rm, name)
	if !ok {
		return 0
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 counter", name)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

// FloatCounterValue sums every data point of a float64 counter.
func FloatCounterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) float64 {
	t.Helper()

	m, ok := findMetric(rm, name)
	if !ok {
		return 0
	}
	sum, ok := m.Data.(metricdata.Sum[float64])
	require.True(t, ok, "metric %s is not a float64 counter", name)

	var total float64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

// HistogramCount returns the total number of observations recorded.
func HistogramCount(t *testing.T, rm metricdata.ResourceMetrics, name string) uint64 {
	t.Helper()

	m, ok := findMetric(rm, name)
	if !ok {
		return 0
	}
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "metric %s is not a float64 histogram", name)

	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	return count
}

// CounterAttr returns the string attribute recorded on the first data point
// of a counter, or "" when absent.
func CounterAttr(t *testing.T, rm metricdata.ResourceMetrics, name, key string) string {
	t.Helper()

	m, ok := findMetric(rm, name)
	if !ok {
		return ""
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 counter", name)
	if len(sum.DataPoints) == 0 {
		return ""
	}
	for _, attr := range sum.DataPoints[0].Attributes.ToSlice() {
		if string(attr.Key) == key {
			return attr.Value.AsString()
		}
	}
	return ""
}

// MetricUnit returns the unit an instrument was registered with.
func MetricUnit(t *testing.T, rm metricdata.ResourceMetrics, name string) string {
	t.Helper()

	m, ok := findMetric(rm, name)
	require.True(t, ok, "metric %s not found", name)
	return m.Unit
}
