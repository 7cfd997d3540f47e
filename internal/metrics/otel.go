package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "chess-league-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	fetchAttempts    metric.Int64Counter
	fetchErrors      metric.Int64Counter
	fetchLatencyMs   metric.Float64Histogram
	cacheLookups     metric.Int64Counter
	scrapes          metric.Int64Counter
	scrapeErrors     metric.Int64Counter
	scrapeMatchIDs   metric.Int64Counter
	scrapeLatencyMs  metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("chess-league-service")
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	fetchAttempts, err := meter.Int64Counter("api_fetch_attempts_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("api_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	fetchLatency, err := meter.Float64Histogram("api_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	cacheLookups, err := meter.Int64Counter("cache_lookups_total")
	if err != nil {
		return nil, err
	}
	scrapes, err := meter.Int64Counter("forum_scrapes_total")
	if err != nil {
		return nil, err
	}
	scrapeErrors, err := meter.Int64Counter("forum_scrape_errors_total")
	if err != nil {
		return nil, err
	}
	scrapeMatchIDs, err := meter.Int64Counter("forum_scrape_match_ids_total")
	if err != nil {
		return nil, err
	}
	scrapeLatency, err := meter.Float64Histogram("forum_scrape_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		requests:         requests,
		requestLatencyMs: requestLatency,
		fetchAttempts:    fetchAttempts,
		fetchErrors:      fetchErrors,
		fetchLatencyMs:   fetchLatency,
		cacheLookups:     cacheLookups,
		scrapes:          scrapes,
		scrapeErrors:     scrapeErrors,
		scrapeMatchIDs:   scrapeMatchIDs,
		scrapeLatencyMs:  scrapeLatency,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordFetch(kind string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrKind, kind)}
	o.recordCounter(o.fetchAttempts, 1, attrs...)
	o.recordHistogram(o.fetchLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.fetchErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordCacheLookup(kind string, hit bool) {
	if o == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	o.recordCounter(o.cacheLookups, 1,
		attribute.String(AttrKind, kind),
		attribute.String(AttrCache, outcome),
	)
}

func (o *otelInstruments) recordScrape(duration time.Duration, count int, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.scrapes, 1)
	o.recordHistogram(o.scrapeLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.scrapeErrors, 1)
		return
	}
	if count > 0 {
		o.recordCounter(o.scrapeMatchIDs, int64(count))
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
