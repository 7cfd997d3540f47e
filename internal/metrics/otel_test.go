package metrics

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if rec == nil {
		t.Fatal("no recorder returned")
	}
	if handler != nil {
		t.Fatal("handler returned while disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSetupPrometheusOnly(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		Port:    "9090",
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer shutdown(context.Background())

	if handler == nil {
		t.Fatal("no prometheus handler returned")
	}

	// Instrument recording must not panic with the full pipeline wired.
	rec.RecordHTTPRequest("GET", "/clubs/:id", 200, 5*time.Millisecond)
	rec.RecordFetch("club", 10*time.Millisecond, nil)
	rec.RecordCacheLookup("club", false)
	rec.RecordScrape(time.Second, 2, nil)
}
