// internal/common/observability/metrics.go
package observability

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Observability records engine metrics through OpenTelemetry with the
// Prometheus exporter. Strategy/feed bookkeeping is metadata only and never
// affects ranking.
type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	strategyCount otelmetric.Int64Counter
	feedCalls     otelmetric.Int64Counter
	opDuration    otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)

	provider := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	strategyCount, _ := meter.Int64Counter(
		"search.strategies.attempted",
		otelmetric.WithDescription("Number of search strategy attempts"),
	)

	feedCalls, _ := meter.Int64Counter(
		"feed.calls",
		otelmetric.WithDescription("Number of upstream feed calls"),
	)

	opDuration, _ := meter.Float64Histogram(
		"engine.operation.duration",
		otelmetric.WithDescription("Engine operation duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		strategyCount: strategyCount,
		feedCalls:     feedCalls,
		opDuration:    opDuration,
	}
}

// RecordStrategyAttempt counts one strategy attempt and its outcome.
func (o *Observability) RecordStrategyAttempt(ctx context.Context, strategy, outcome string) {
	if o.strategyCount != nil {
		o.strategyCount.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("strategy", strategy),
			attribute.String("outcome", outcome),
		))
	}
}

// RecordFeedCall counts one upstream call against an endpoint.
func (o *Observability) RecordFeedCall(ctx context.Context, endpoint string) {
	if o.feedCalls != nil {
		o.feedCalls.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("endpoint", endpoint),
		))
	}
}

// RecordOperationDuration records one engine operation's latency.
func (o *Observability) RecordOperationDuration(ctx context.Context, operation string, duration time.Duration, status string) {
	if o.opDuration != nil {
		o.opDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		))
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (o *Observability) Handler() http.Handler {
	return promhttp.Handler()
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
