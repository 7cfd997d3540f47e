package config

import "time"

const (
	envPort         = "PORT"
	envCacheTTL     = "CACHE_TTL"
	envAdminToken   = "ADMIN_TOKEN"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The chess.com published-data API refreshes most endpoints at most once
	// per hour, so cached payloads stay valid for the same window.
	defaultCacheTTL    = Duration(time.Hour)
	defaultMetricsPort = "9090"
)
